package core

import (
	"math"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TabWidth is the distance between tab stops, in cells.
const TabWidth = 4

// Glyph is one rune placed on a layout run.
type Glyph struct {
	Start int // rune column in the logical line
	End   int
	X     int // cell offset from the run's left edge
	W     int // width in cells
	Text  string
	Attrs Attrs
}

// LayoutRun is one visual line: a logical line, or a wrapped segment of one.
type LayoutRun struct {
	LineIndex   int
	StartCol    int
	EndCol      int
	LastSegment bool // the run ends its logical line
	Glyphs      []Glyph
	LineTop     int
	LineHeight  int
	LineW       int
}

// Text returns the run's characters as drawn.
func (r LayoutRun) Text() string {
	var sb strings.Builder
	for _, g := range r.Glyphs {
		sb.WriteString(g.Text)
	}
	return sb.String()
}

// Highlight returns the horizontal extent of the part of [start, end) that
// falls on this run. When the selection continues past the end of this
// logical line the newline is shown as one extra cell.
func (r LayoutRun) Highlight(start, end Position) (x, w int, ok bool) {
	line := r.LineIndex
	if line < start.Row || line > end.Row {
		return 0, 0, false
	}

	from, to := 0, math.MaxInt
	if line == start.Row {
		from = start.Col
	}
	if line == end.Row {
		to = end.Col
	}

	minX, maxX := -1, -1
	for _, g := range r.Glyphs {
		if g.Start >= from && g.End <= to {
			if minX < 0 {
				minX = g.X
			}
			maxX = g.X + g.W
		}
	}

	if line < end.Row && r.LastSegment {
		if minX < 0 {
			minX, maxX = r.LineW, r.LineW
		}
		maxX++
	}

	if minX < 0 || maxX <= minX {
		return 0, 0, false
	}
	return minX, maxX - minX, true
}

// TextData is the shaped text handed to the renderer: the visible runs, with
// LineTop relative to the top of the viewport, and the size of the whole text.
type TextData struct {
	Runs       []LayoutRun
	Width      int
	Height     int
	LineHeight int
}

// shapeLine turns one logical line into glyphs and wraps them at width cells.
// width <= 0 disables wrapping.
func shapeLine(row int, line []rune, spans []Span, def Attrs, width int) []LayoutRun {
	glyphs := make([]Glyph, 0, len(line))
	x := 0
	for col, r := range line {
		g := Glyph{Start: col, End: col + 1, X: x, Attrs: attrsAt(spans, col, def)}
		switch {
		case r == '\t':
			g.W = TabWidth - x%TabWidth
			g.Text = strings.Repeat(" ", g.W)
		case unicode.IsControl(r):
			g.W = 1
			g.Text = " "
		default:
			g.W = runewidth.RuneWidth(r)
			g.Text = string(r)
		}
		x += g.W
		glyphs = append(glyphs, g)
	}

	segments := wrapGlyphs(glyphs, width)
	runs := make([]LayoutRun, 0, len(segments))
	for i, seg := range segments {
		part := glyphs[seg[0]:seg[1]]
		run := LayoutRun{
			LineIndex:   row,
			StartCol:    seg[0],
			EndCol:      seg[1],
			LastSegment: i == len(segments)-1,
			Glyphs:      make([]Glyph, len(part)),
		}
		offset := 0
		if len(part) > 0 {
			offset = part[0].X
		}
		for j, g := range part {
			g.X -= offset
			run.Glyphs[j] = g
			run.LineW = g.X + g.W
		}
		if width > 0 {
			run.LineW = min(run.LineW, width)
		}
		runs = append(runs, run)
	}
	return runs
}

// wrapGlyphs returns [start, end) glyph index ranges for each visual line. It
// breaks after the last space that fits and lets trailing spaces hang past
// the edge, so wrapped lines never start with blanks.
func wrapGlyphs(glyphs []Glyph, width int) [][2]int {
	n := len(glyphs)
	if n == 0 {
		return [][2]int{{0, 0}}
	}
	if width <= 0 {
		return [][2]int{{0, n}}
	}

	var segments [][2]int
	start := 0
	for start < n {
		w, end := 0, start
		for end < n && w+glyphs[end].W <= width {
			w += glyphs[end].W
			end++
		}
		if end == start {
			end = start + 1 // a glyph wider than the line still takes one
		}
		if end >= n {
			segments = append(segments, [2]int{start, n})
			break
		}

		if !isSpaceGlyph(glyphs[end]) {
			for i := end - 1; i > start; i-- {
				if isSpaceGlyph(glyphs[i]) {
					end = i + 1
					break
				}
			}
		}
		for end < n && isSpaceGlyph(glyphs[end]) {
			end++
		}

		segments = append(segments, [2]int{start, end})
		start = end
	}
	return segments
}

func isSpaceGlyph(g Glyph) bool {
	return strings.TrimSpace(g.Text) == ""
}
