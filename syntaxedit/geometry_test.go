package syntaxedit

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/ui"
)

func TestComputeSelectionRects(t *testing.T) {
	ed := core.New(core.WithText("abc\nde"))
	ed.SetCursor(core.Position{Row: 0, Col: 1})
	ed.SetSelection(core.Selection{Kind: core.SelectionNormal, Anchor: core.Position{Row: 0, Col: 1}})
	ed.SetCursor(core.Position{Row: 1, Col: 1})

	require.Equal(t, []RectDef{
		{X: 1, Y: 0, Width: 3, Height: 1},
		{X: 0, Y: 1, Width: 1, Height: 1},
	}, ComputeSelectionRects(ed))
}

func TestComputeSelectionRects_NoSelection(t *testing.T) {
	ed := core.New(core.WithText("abc"))
	require.Empty(t, ComputeSelectionRects(ed))
}

func TestClipAndTakeVisible(t *testing.T) {
	tests := []struct {
		name string
		in   RectDef
		want []RectDef
	}{
		{"inside", RectDef{X: 1, Y: 1, Width: 2, Height: 1}, []RectDef{{X: 1, Y: 1, Width: 2, Height: 1}}},
		{"right overflow", RectDef{X: 8, Y: 0, Width: 5, Height: 1}, []RectDef{{X: 8, Y: 0, Width: 2, Height: 1}}},
		{"left overflow", RectDef{X: -3, Y: 2, Width: 5, Height: 1}, []RectDef{{X: 0, Y: 2, Width: 2, Height: 1}}},
		{"above", RectDef{X: 0, Y: -1, Width: 4, Height: 1}, nil},
		{"below", RectDef{X: 0, Y: 5, Width: 4, Height: 1}, nil},
		{"right of", RectDef{X: 10, Y: 0, Width: 4, Height: 1}, nil},
		{"huge", RectDef{X: 0, Y: 0, Width: ui.PxMax, Height: ui.PxMax}, []RectDef{{X: 0, Y: 0, Width: 10, Height: 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClipAndTakeVisible([]RectDef{tt.in}, 10, 5))
		})
	}
}

func TestClipAndTakeVisible_MatchesIntersection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x1 := ui.Px(rapid.Int32Range(1, 50).Draw(t, "x1"))
		y1 := ui.Px(rapid.Int32Range(1, 50).Draw(t, "y1"))
		viewport := ui.Rect{Width: x1, Height: y1}

		rects := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) RectDef {
			return RectDef{
				X:      ui.Px(rapid.Int32Range(-60, 60).Draw(t, "x")),
				Y:      ui.Px(rapid.Int32Range(-60, 60).Draw(t, "y")),
				Width:  ui.Px(rapid.Int32Range(1, 40).Draw(t, "w")),
				Height: ui.Px(rapid.Int32Range(1, 40).Draw(t, "h")),
			}
		}), 0, 8).Draw(t, "rects")

		var want []RectDef
		for _, r := range rects {
			in := ui.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}.Intersect(viewport)
			if in.Empty() {
				continue
			}
			want = append(want, RectDef{X: in.X, Y: in.Y, Width: in.Width, Height: in.Height})
		}

		got := ClipAndTakeVisible(rects, x1, y1)
		if len(want) == 0 {
			if len(got) != 0 {
				t.Fatalf("expected nothing visible, got %v", got)
			}
			return
		}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("rect %d: got %v, want %v", i, got[i], want[i])
			}
		}
	})
}
