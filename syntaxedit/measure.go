package syntaxedit

import (
	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/ui"
)

// CursorWidth is the width of the text cursor. The editor reserves it to the
// right of the text so a cursor at the end of the longest line stays inside.
const CursorWidth ui.Px = 1

// maxPx resolves the largest size an axis allows, PxMax when unbounded.
func maxPx(d ui.DimensionValue) ui.Px {
	if v, ok := d.MaxPx(); ok {
		return v
	}
	return ui.PxMax
}

// measureCore sizes the text node. selectionChildren is how many selection
// highlight children were declared for this frame, from the rectangles the
// previous pass stored; the cursor child, when declared, follows them.
func measureCore(state *EditorState, hook Highlighter, selectionChildren int) ui.MeasureFunc {
	return func(in ui.MeasureInput) (ui.ComputedData, error) {
		in.EnableClipping()

		parent := in.ParentConstraint()
		maxW, maxH := maxPx(parent.Width), maxPx(parent.Height)

		if hook != nil {
			hook.Prepare()
		}

		data := state.textData(maxW, maxH)

		var rects []RectDef
		state.withEditor(func(ed *core.Editor) {
			rects = ComputeSelectionRects(ed)
		})
		clipped := ClipAndTakeVisible(rects, maxW, maxH)

		ids := in.ChildIDs()
		for i, r := range clipped {
			if i >= selectionChildren || i >= len(ids) {
				break
			}
			if _, err := in.MeasureChild(ids[i], parent); err != nil {
				return ui.ZeroSize, err
			}
			in.PlaceChild(ids[i], ui.PxPosition{X: r.X, Y: r.Y})
		}

		if state.setSelectionRects(clipped) {
			// The highlight children of this frame were declared from the
			// previous rectangles
			in.Invalidate()
		}

		var (
			x, y    int
			visible bool
		)
		state.withEditor(func(ed *core.Editor) {
			x, y, visible = ed.CursorPosition()
		})
		if visible && selectionChildren < len(ids) {
			id := ids[selectionChildren]
			if _, err := in.MeasureChild(id, parent); err != nil {
				return ui.ZeroSize, err
			}
			in.PlaceChild(id, ui.PxPosition{X: ui.Px(x), Y: ui.Px(y)})
		}

		in.PushDrawCommand(ui.TextCommand{Data: data})

		height := ui.Px(data.Height)
		if maxH != ui.PxMax {
			height = min(height, maxH)
		}
		return ui.ComputedData{Width: ui.Px(data.Width) + CursorWidth, Height: height}, nil
	}
}

// editCore declares the text node with its selection highlights and cursor.
func editCore(s *ui.Scope, state *EditorState, hook Highlighter) {
	s.Node("syntax_edit_core", func(s *ui.Scope) {
		rects := state.SelectionRects()
		s.Measure(measureCore(state, hook, len(rects)))

		color := state.SelectionColor()
		for _, r := range rects {
			selectionRect(s, r.Width, r.Height, color)
		}

		if state.IsFocused() {
			cursor(s, state.LineHeight(), state.Blink())
		}
	})
}

// selectionRect is a fixed size block of the selection colour.
func selectionRect(s *ui.Scope, width, height ui.Px, color ui.Color) {
	s.Node("selection_rect", func(s *ui.Scope) {
		s.Measure(func(in ui.MeasureInput) (ui.ComputedData, error) {
			in.PushDrawCommand(ui.DrawFunc(func(c ui.Canvas, bounds ui.Rect) {
				c.Fill(bounds, color)
			}))
			return ui.ComputedData{Width: width, Height: height}, nil
		})
	})
}

// cursor draws the caret while the blink timer is in its on phase.
func cursor(s *ui.Scope, lineHeight ui.Px, blink *ui.BlinkTimer) {
	s.Node("cursor", func(s *ui.Scope) {
		s.Measure(func(in ui.MeasureInput) (ui.ComputedData, error) {
			in.PushDrawCommand(ui.DrawFunc(func(c ui.Canvas, bounds ui.Rect) {
				if blink.Visible() {
					c.Reverse(bounds)
				}
			}))
			return ui.ComputedData{Width: CursorWidth, Height: lineHeight}, nil
		})
	})
}
