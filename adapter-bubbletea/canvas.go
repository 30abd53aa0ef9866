package adapter_bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/ui"
)

// cell is one terminal cell. A wide glyph occupies its first cell; the cells
// it covers have cont set and are skipped when printing.
type cell struct {
	text      string
	fg        string // hex, empty for the terminal default
	bg        ui.Color
	hasBg     bool
	bold      bool
	italic    bool
	underline bool
	reverse   bool
	cont      bool
}

// Canvas is a ui.Canvas over a grid of terminal cells, printed with lipgloss.
type Canvas struct {
	width, height int
	cells         []cell
	clip          ui.Rect
	background    ui.Color // what translucent fills blend over where nothing was drawn
}

// NewCanvas returns a blank canvas of width x height cells.
func NewCanvas(width, height int, background ui.Color) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:      width,
		height:     height,
		cells:      make([]cell, width*height),
		background: background,
	}
	for i := range c.cells {
		c.cells[i].text = " "
	}
	c.clip = ui.Rect{Width: ui.Px(width), Height: ui.Px(height)}
	return c
}

func (c *Canvas) Size() ui.ComputedData {
	return ui.ComputedData{Width: ui.Px(c.width), Height: ui.Px(c.height)}
}

func (c *Canvas) SetClip(r ui.Rect) {
	c.clip = r.Intersect(ui.Rect{Width: ui.Px(c.width), Height: ui.Px(c.height)})
}

func (c *Canvas) at(x, y ui.Px) *cell {
	if !c.clip.Contains(x, y) {
		return nil
	}
	return &c.cells[int(y)*c.width+int(x)]
}

// each visits the cells of r that are inside the clip.
func (c *Canvas) each(r ui.Rect, fn func(*cell)) {
	r = r.Intersect(c.clip)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			fn(&c.cells[int(y)*c.width+int(x)])
		}
	}
}

func (c *Canvas) Fill(r ui.Rect, color ui.Color) {
	if color.A <= 0 {
		return
	}
	c.each(r, func(cl *cell) {
		dst := c.background
		if cl.hasBg {
			dst = cl.bg
		}
		cl.bg = color.Over(dst)
		cl.hasBg = true
	})
}

func (c *Canvas) Glyph(x, y ui.Px, text string, width int, attrs core.Attrs) {
	if width <= 0 {
		width = uniseg.StringWidth(text)
	}
	if width == 0 {
		// Combining marks join the previous cell
		if prev := c.at(x-1, y); prev != nil {
			prev.text += text
		}
		return
	}

	cl := c.at(x, y)
	if cl == nil {
		return
	}
	// A wide glyph cut by the clip would spill past it
	if width > 1 && c.at(x+ui.Px(width)-1, y) == nil {
		text, width = " ", 1
	}

	cl.text = text
	cl.fg = attrs.Color
	cl.bold = attrs.Bold
	cl.italic = attrs.Italic
	cl.underline = attrs.Underline
	cl.cont = false
	for i := 1; i < width; i++ {
		if next := c.at(x+ui.Px(i), y); next != nil {
			next.text = ""
			next.cont = true
		}
	}
}

var (
	roundedBorder = lipgloss.RoundedBorder()
	normalBorder  = lipgloss.NormalBorder()
)

func (c *Canvas) Border(r ui.Rect, color ui.Color, rounded bool) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	b := normalBorder
	if rounded {
		b = roundedBorder
	}

	fg := color.Hex()
	put := func(x, y ui.Px, s string) {
		if cl := c.at(x, y); cl != nil {
			cl.text, cl.fg, cl.cont = s, fg, false
			cl.bold, cl.italic, cl.underline = false, false, false
		}
	}

	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width-1, r.Y+r.Height-1
	for x := x0 + 1; x < x1; x++ {
		put(x, y0, b.Top)
		put(x, y1, b.Bottom)
	}
	for y := y0 + 1; y < y1; y++ {
		put(x0, y, b.Left)
		put(x1, y, b.Right)
	}
	put(x0, y0, b.TopLeft)
	put(x1, y0, b.TopRight)
	put(x0, y1, b.BottomLeft)
	put(x1, y1, b.BottomRight)
}

func (c *Canvas) Reverse(r ui.Rect) {
	c.each(r, func(cl *cell) {
		cl.reverse = !cl.reverse
	})
}

func (cl cell) sameStyle(o cell) bool {
	return cl.fg == o.fg && cl.hasBg == o.hasBg && (!cl.hasBg || cl.bg.Hex() == o.bg.Hex()) &&
		cl.bold == o.bold && cl.italic == o.italic && cl.underline == o.underline && cl.reverse == o.reverse
}

func (cl cell) style() lipgloss.Style {
	s := lipgloss.NewStyle().
		Bold(cl.bold).
		Italic(cl.italic).
		Underline(cl.underline).
		Reverse(cl.reverse)
	if cl.fg != "" {
		s = s.Foreground(lipgloss.Color(cl.fg))
	}
	if cl.hasBg {
		s = s.Background(lipgloss.Color(cl.bg.Hex()))
	}
	return s
}

// String prints the canvas, one line per row, grouping equally styled cells.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]

		start := 0
		for start < len(row) {
			end := start + 1
			for end < len(row) && row[end].sameStyle(row[start]) {
				end++
			}

			var run strings.Builder
			for _, cl := range row[start:end] {
				if !cl.cont {
					run.WriteString(cl.text)
				}
			}
			sb.WriteString(row[start].style().Render(run.String()))
			start = end
		}
	}
	return sb.String()
}

// Plain prints the canvas without styling, for tests and logs.
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for y := range c.height {
		var sb strings.Builder
		for _, cl := range c.cells[y*c.width : (y+1)*c.width] {
			if !cl.cont {
				sb.WriteString(cl.text)
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
