package ui

import "github.com/ionut-t/synedit/core"

// Canvas is a cell surface the runtime renders onto. Every write is limited
// to the current clip rectangle.
type Canvas interface {
	Size() ComputedData
	SetClip(r Rect)
	// Fill composites c over the background of every cell in r.
	Fill(r Rect, c Color)
	// Glyph writes text occupying width cells at (x, y). Zero width text
	// joins the cell before it.
	Glyph(x, y Px, text string, width int, attrs core.Attrs)
	// Border outlines r with box drawing cells.
	Border(r Rect, c Color, rounded bool)
	// Reverse swaps foreground and background of every cell in r.
	Reverse(r Rect)
}

// DrawCommand paints a node. bounds is the node's absolute rectangle.
type DrawCommand interface {
	Draw(c Canvas, bounds Rect)
}

// RectCommand fills and/or outlines the node's rectangle.
type RectCommand struct {
	Color       Color
	BorderColor Color
	BorderWidth Px
	Style       SurfaceStyle
	Shape       Shape
}

func (r RectCommand) Draw(c Canvas, bounds Rect) {
	if r.Style != StyleOutlined {
		c.Fill(bounds, r.Color)
	}
	if r.Style != StyleFilled && r.BorderWidth > 0 {
		c.Border(bounds, r.BorderColor, r.Shape.Rounded())
	}
}

// TextCommand draws shaped text with the run tops relative to the node.
type TextCommand struct {
	Data core.TextData
}

func (t TextCommand) Draw(c Canvas, bounds Rect) {
	for _, run := range t.Data.Runs {
		y := bounds.Y + Px(run.LineTop)
		for _, g := range run.Glyphs {
			c.Glyph(bounds.X+Px(g.X), y, g.Text, g.W, g.Attrs)
		}
	}
}

// DrawFunc adapts a function to DrawCommand.
type DrawFunc func(c Canvas, bounds Rect)

func (f DrawFunc) Draw(c Canvas, bounds Rect) {
	f(c, bounds)
}
