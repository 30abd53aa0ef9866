package core

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestShapeLine_TabsAndWideRunes(t *testing.T) {
	runs := shapeLine(0, []rune("a\t世b"), nil, Attrs{}, 0)
	require.Len(t, runs, 1)

	glyphs := runs[0].Glyphs
	require.Len(t, glyphs, 4)
	require.Equal(t, 3, glyphs[1].W, "tab runs to the next stop")
	require.Equal(t, 4, glyphs[2].X)
	require.Equal(t, 2, glyphs[2].W)
	require.Equal(t, 6, glyphs[3].X)
	require.Equal(t, 7, runs[0].LineW)
}

func TestShapeLine_AppliesSpans(t *testing.T) {
	bold := Attrs{Bold: true, Color: "#cc99cc"}
	def := Attrs{Color: "#d3d0c8"}

	runs := shapeLine(0, []rune("fn x"), []Span{{Start: 0, End: 2, Attrs: bold}}, def, 0)

	glyphs := runs[0].Glyphs
	require.Equal(t, bold, glyphs[0].Attrs)
	require.Equal(t, bold, glyphs[1].Attrs)
	require.Equal(t, def, glyphs[2].Attrs)
}

func TestShapeLine_EmptyLineHasOneRun(t *testing.T) {
	runs := shapeLine(3, nil, nil, Attrs{}, 10)
	require.Len(t, runs, 1)
	require.Equal(t, 3, runs[0].LineIndex)
	require.True(t, runs[0].LastSegment)
	require.Empty(t, runs[0].Glyphs)
}

func TestShapeLine_BreaksLongWords(t *testing.T) {
	runs := shapeLine(0, []rune("abcdefgh"), nil, Attrs{}, 3)

	var texts []string
	for _, r := range runs {
		texts = append(texts, r.Text())
	}
	require.Equal(t, []string{"abc", "def", "gh"}, texts)
	require.True(t, runs[2].LastSegment)
	require.False(t, runs[0].LastSegment)
}

func TestWrapGlyphs_CoversLineWithoutGaps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := []rune(rapid.StringMatching(`[a-z 世]{0,40}`).Draw(t, "line"))
		width := rapid.IntRange(1, 12).Draw(t, "width")

		runs := shapeLine(0, line, nil, Attrs{}, width)

		next := 0
		for i, run := range runs {
			if run.StartCol != next {
				t.Fatalf("run %d starts at %d, want %d", i, run.StartCol, next)
			}
			if run.LineW > width {
				t.Fatalf("run %d is %d cells wide, limit %d", i, run.LineW, width)
			}
			if i > 0 && len(run.Glyphs) > 0 && isSpaceGlyph(run.Glyphs[0]) {
				t.Fatalf("run %d starts with a blank", i)
			}
			next = run.EndCol
		}
		if next != len(line) {
			t.Fatalf("runs end at %d, line has %d runes", next, len(line))
		}
	})
}

func TestLayoutRun_Highlight(t *testing.T) {
	e := New(WithText("ab\ncd"))
	runs := e.LayoutRuns()
	start, end := Position{Row: 0, Col: 1}, Position{Row: 1, Col: 1}

	x, w, ok := runs[0].Highlight(start, end)
	require.True(t, ok)
	require.Equal(t, 1, x)
	require.Equal(t, 2, w, "the newline counts as one cell")

	x, w, ok = runs[1].Highlight(start, end)
	require.True(t, ok)
	require.Equal(t, 0, x)
	require.Equal(t, 1, w)
}

func TestLayoutRun_HighlightEmptyLine(t *testing.T) {
	e := New(WithText("a\n\nb"))
	runs := e.LayoutRuns()

	x, w, ok := runs[1].Highlight(Position{Row: 0}, Position{Row: 2, Col: 1})
	require.True(t, ok)
	require.Equal(t, 0, x)
	require.Equal(t, 1, w)

	_, _, ok = runs[2].Highlight(Position{Row: 0}, Position{Row: 1})
	require.False(t, ok, "line after the selection")
}
