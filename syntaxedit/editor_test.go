package syntaxedit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/ui"
)

type fill struct {
	rect  ui.Rect
	color ui.Color
}

// drawLog records draw calls as issued, without applying the clip.
type drawLog struct {
	fills    []fill
	reversed []ui.Rect
	glyphs   map[ui.PxPosition]string
}

func newDrawLog() *drawLog {
	return &drawLog{glyphs: map[ui.PxPosition]string{}}
}

func (c *drawLog) Size() ui.ComputedData { return ui.ComputedData{Width: 40, Height: 10} }
func (c *drawLog) SetClip(ui.Rect)       {}
func (c *drawLog) Fill(r ui.Rect, col ui.Color) {
	c.fills = append(c.fills, fill{rect: r, color: col})
}
func (c *drawLog) Glyph(x, y ui.Px, text string, _ int, _ core.Attrs) {
	c.glyphs[ui.PxPosition{X: x, Y: y}] = text
}
func (c *drawLog) Border(ui.Rect, ui.Color, bool) {}
func (c *drawLog) Reverse(r ui.Rect)              { c.reversed = append(c.reversed, r) }

func (c *drawLog) fillsOf(col ui.Color) []ui.Rect {
	var rects []ui.Rect
	for _, f := range c.fills {
		if f.color == col {
			rects = append(rects, f.rect)
		}
	}
	return rects
}

func frame(t *testing.T, rt *ui.Runtime, args SyntaxEditorArgs, state *EditorState) ui.ComputedData {
	t.Helper()
	size, err := rt.Frame(ui.NewConstraint(ui.Wrap(), ui.Wrap()), func(s *ui.Scope) {
		SyntaxEditor(s, args, state)
	})
	require.NoError(t, err)
	return size
}

func TestSyntaxEditor_WidthReservesCursor(t *testing.T) {
	state := NewEditorState(1, WithText("abc\nde"))
	rt := ui.NewRuntime()

	size := frame(t, rt, keepArgs(), state)
	require.Equal(t, ui.ComputedData{Width: 4, Height: 2}, size)

	state.RequestFocus()
	require.Equal(t, size, frame(t, rt, keepArgs(), state), "focus does not change the size")
}

func TestSyntaxEditor_InsetAddsToSize(t *testing.T) {
	state := NewEditorState(1, WithText("abc"))
	rt := ui.NewRuntime()

	args := keepArgs().WithPadding(2).WithBorderWidth(1)
	require.Equal(t, ui.ComputedData{Width: 4 + 6, Height: 1 + 6}, frame(t, rt, args, state))
}

func TestSyntaxEditor_FixedHeightLimitsViewport(t *testing.T) {
	state := NewEditorState(1, WithText("1\n2\n3\n4\n5"))
	rt := ui.NewRuntime()

	size := frame(t, rt, keepArgs().WithHeight(ui.Fixed(2)), state)
	require.Equal(t, ui.Px(2), size.Height)

	canvas := newDrawLog()
	require.NoError(t, rt.Render(canvas))
	require.Equal(t, "1", canvas.glyphs[ui.PxPosition{X: 0, Y: 0}])
	require.Equal(t, "2", canvas.glyphs[ui.PxPosition{X: 0, Y: 1}])
	_, drawn := canvas.glyphs[ui.PxPosition{X: 0, Y: 2}]
	require.False(t, drawn)
}

func TestSyntaxEditor_SelectionDrawnInSameFrame(t *testing.T) {
	state := NewEditorState(1, WithText("abc\nde"))
	rt := ui.NewRuntime()
	d := newDispatcher(keepArgs(), state, DefaultKeyMap())
	state.RequestFocus()

	frame(t, rt, keepArgs(), state)
	d.handle(keyInput(ctrlKey('a')))
	frame(t, rt, keepArgs(), state)

	want := []RectDef{{X: 0, Y: 0, Width: 4, Height: 1}, {X: 0, Y: 1, Width: 2, Height: 1}}
	require.Equal(t, want, state.SelectionRects())

	canvas := newDrawLog()
	require.NoError(t, rt.Render(canvas))
	require.Equal(t, []ui.Rect{
		{X: 0, Y: 0, Width: 4, Height: 1},
		{X: 0, Y: 1, Width: 2, Height: 1},
	}, canvas.fillsOf(DefaultSelectionColor))
}

func TestSyntaxEditor_SelectionColorFromArgs(t *testing.T) {
	state := NewEditorState(1, WithText("abc"))
	red := ui.RGBA(1, 0, 0, 0.5)

	frame(t, ui.NewRuntime(), keepArgs().WithSelectionColor(red), state)
	require.Equal(t, red, state.SelectionColor())
}

func TestSyntaxEditor_CursorOnlyWhenFocused(t *testing.T) {
	state := NewEditorState(1, WithText("abc\nde"))
	rt := ui.NewRuntime()

	frame(t, rt, keepArgs(), state)
	canvas := newDrawLog()
	require.NoError(t, rt.Render(canvas))
	require.Empty(t, canvas.reversed)

	state.RequestFocus()
	d := newDispatcher(keepArgs(), state, DefaultKeyMap())
	d.handle(keyInput(ui.KeyEvent{Key: ui.KeyDown}, ui.KeyEvent{Key: ui.KeyEnd}))

	frame(t, rt, keepArgs(), state)
	canvas = newDrawLog()
	require.NoError(t, rt.Render(canvas))
	require.Equal(t, []ui.Rect{{X: 2, Y: 1, Width: 1, Height: 1}}, canvas.reversed)
}

func TestSyntaxEditor_DispatchThroughRuntime(t *testing.T) {
	state := NewEditorState(1, WithText("hello"))
	rt := ui.NewRuntime()
	args := keepArgs()
	frame(t, rt, args, state)

	res := rt.Dispatch(ui.InputEvents{
		CursorPosition: &ui.PxPosition{X: 2, Y: 0},
		CursorEvents:   []ui.CursorEvent{{Kind: ui.CursorPressed}, {Kind: ui.CursorReleased}},
	})
	require.True(t, state.IsFocused())
	require.Empty(t, res.Unconsumed.CursorEvents)
	require.Equal(t, ui.CursorIconText, res.Requests.CursorIcon)
	require.NotNil(t, res.Requests.ImeRequest)
	require.Equal(t, ui.PxPosition{}, *res.Requests.ImeRequest.Position)

	frame(t, rt, args, state)
	rt.Dispatch(ui.InputEvents{KeyboardEvents: []ui.KeyEvent{{Rune: 'X'}}})
	require.Equal(t, "heXllo", state.Text())
}

func TestSyntaxEditor_HighlightsWithTheme(t *testing.T) {
	state := NewEditorState(1, WithText("fn main() {}"))
	rt := ui.NewRuntime()

	frame(t, rt, keepArgs().WithFileExtension("rs"), state)

	var stamp string
	state.withEditor(func(ed *core.Editor) {
		stamp = ed.Buffer().HighlightStamp()
	})
	require.Contains(t, stamp, "Rust")
}
