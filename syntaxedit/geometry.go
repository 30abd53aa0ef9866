package syntaxedit

import (
	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/ui"
)

// RectDef is a rectangle relative to the editor's content origin.
type RectDef struct {
	X      ui.Px
	Y      ui.Px
	Width  ui.Px
	Height ui.Px
}

// ComputeSelectionRects returns one rectangle per visible layout run that the
// selection touches, spanning the highlighted part of the run.
func ComputeSelectionRects(ed *core.Editor) []RectDef {
	start, end, ok := ed.SelectionBounds()
	if !ok {
		return nil
	}

	var rects []RectDef
	for _, run := range ed.LayoutRuns() {
		x, w, ok := run.Highlight(start, end)
		if !ok {
			continue
		}
		rects = append(rects, RectDef{
			X:      ui.Px(x),
			Y:      ui.Px(run.LineTop),
			Width:  ui.Px(w),
			Height: ui.Px(run.LineHeight),
		})
	}
	return rects
}

// ClipAndTakeVisible intersects rects with the viewport [0, x1) x [0, y1),
// dropping the ones that do not overlap it. Order is preserved.
func ClipAndTakeVisible(rects []RectDef, x1, y1 ui.Px) []RectDef {
	var visible []RectDef
	for _, r := range rects {
		rx1 := saturatingAdd(r.X, r.Width)
		ry1 := saturatingAdd(r.Y, r.Height)
		if rx1 <= 0 || r.Y >= y1 || r.X >= x1 || ry1 <= 0 {
			continue
		}

		x, y := max(r.X, 0), max(r.Y, 0)
		visible = append(visible, RectDef{
			X:      x,
			Y:      y,
			Width:  max(min(rx1, x1)-x, 0),
			Height: max(min(ry1, y1)-y, 0),
		})
	}
	return visible
}

func saturatingAdd(a, b ui.Px) ui.Px {
	s := int64(a) + int64(b)
	switch {
	case s > int64(ui.PxMax):
		return ui.PxMax
	case s < -int64(ui.PxMax):
		return -ui.PxMax
	}
	return ui.Px(s)
}
