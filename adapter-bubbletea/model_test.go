package adapter_bubbletea

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/synedit/syntaxedit"
	"github.com/ionut-t/synedit/ui"
)

type memoryClipboard struct {
	text string
}

func (c *memoryClipboard) Write(s string) error {
	c.text = s
	return nil
}

func (c *memoryClipboard) Read() (string, error) {
	return c.text, nil
}

func TestConvertBubbleKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []ui.KeyEvent
	}{
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")},
			[]ui.KeyEvent{{Rune: 'a'}, {Rune: 'b'}}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true},
			[]ui.KeyEvent{{Rune: 'b', Modifiers: ui.ModAlt}}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []ui.KeyEvent{{Key: ui.KeyEnter}}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []ui.KeyEvent{{Key: ui.KeyTab, Rune: '\t'}}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, []ui.KeyEvent{{Key: ui.KeyTab, Modifiers: ui.ModShift}}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []ui.KeyEvent{{Key: ui.KeyBackspace}}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []ui.KeyEvent{{Key: ui.KeyEscape}}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []ui.KeyEvent{{Key: ui.KeySpace, Rune: ' '}}},
		{"shift+left", tea.KeyMsg{Type: tea.KeyShiftLeft}, []ui.KeyEvent{{Key: ui.KeyLeft, Modifiers: ui.ModShift}}},
		{"alt+left", tea.KeyMsg{Type: tea.KeyLeft, Alt: true}, []ui.KeyEvent{{Key: ui.KeyLeft, Modifiers: ui.ModAlt}}},
		{"ctrl+shift+end", tea.KeyMsg{Type: tea.KeyCtrlShiftEnd},
			[]ui.KeyEvent{{Key: ui.KeyEnd, Modifiers: ui.ModCtrl | ui.ModShift}}},
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, []ui.KeyEvent{{Rune: 'a', Modifiers: ui.ModCtrl}}},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, []ui.KeyEvent{{Rune: 'z', Modifiers: ui.ModCtrl}}},
		{"unmapped", tea.KeyMsg{Type: tea.KeyF5}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, convertBubbleKey(tt.msg))
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	require.Equal(t, "a\nb\nc", normalizeNewlines("a\r\nb\rc"))
}

func keep(s string) string { return s }

func newEditorModel(t *testing.T, text string) (*Model, *syntaxedit.EditorState, *memoryClipboard) {
	t.Helper()
	state := syntaxedit.NewEditorState(1, syntaxedit.WithText(text))
	args := syntaxedit.DefaultArgs().WithPadding(0).WithBorderWidth(0).WithOnChange(keep)
	clip := &memoryClipboard{}

	m := New(func(s *ui.Scope) {
		syntaxedit.SyntaxEditor(s, args, state)
	}, 20, 3, WithClipboard(clip), WithBlink(state.Blink()))
	require.NoError(t, m.Err())
	return m, state, clip
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestModel_ClickFocusesAndTypes(t *testing.T) {
	m, state, _ := newEditorModel(t, "ab")
	require.Contains(t, m.View(), "ab")

	m.Update(press(1, 0))
	require.True(t, state.IsFocused())
	require.Equal(t, ui.CursorIconText, m.Requests().CursorIcon)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("xy")})
	require.Equal(t, "axyb", state.Text())
}

func TestModel_PasteCommitsText(t *testing.T) {
	m, state, _ := newEditorModel(t, "ab")
	m.Update(press(1, 0))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x\r\ny"), Paste: true})

	require.Equal(t, "ax\nyb", state.Text())
}

func TestModel_ClipboardShortcuts(t *testing.T) {
	m, state, clip := newEditorModel(t, "copy")
	m.Update(press(0, 0))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Equal(t, "copy", clip.text)

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	require.Equal(t, "copycopy", state.Text())
}

func TestModel_UnfocusedInputIsUnconsumed(t *testing.T) {
	m, state, _ := newEditorModel(t, "ab")

	left := m.Dispatch(ui.InputEvents{KeyboardEvents: []ui.KeyEvent{{Rune: 'x'}}})

	require.Len(t, left.KeyboardEvents, 1)
	require.Equal(t, "ab", state.Text())
}

func TestModel_MotionMovesPointerOnly(t *testing.T) {
	m, state, _ := newEditorModel(t, "hello")

	ev := m.convertMouse(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	require.Empty(t, ev.CursorEvents)
	require.Equal(t, ui.PxPosition{X: 3, Y: 1}, *m.pointer)
	require.False(t, state.IsFocused())
}

func TestModel_ConvertMouse(t *testing.T) {
	m, _, _ := newEditorModel(t, "")

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want ui.CursorEvent
	}{
		{"wheel up", tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress},
			ui.CursorEvent{Kind: ui.CursorScroll, DeltaY: 1}},
		{"wheel down", tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress},
			ui.CursorEvent{Kind: ui.CursorScroll, DeltaY: -1}},
		{"wheel left", tea.MouseMsg{Button: tea.MouseButtonWheelLeft, Action: tea.MouseActionPress},
			ui.CursorEvent{Kind: ui.CursorScroll, DeltaX: 1}},
		{"right press", tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress},
			ui.CursorEvent{Kind: ui.CursorPressed, Button: ui.PressRight}},
		{"release", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
			ui.CursorEvent{Kind: ui.CursorReleased, Button: ui.PressLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := m.convertMouse(tt.msg)
			require.Len(t, ev.CursorEvents, 1)
			got := ev.CursorEvents[0]
			got.Timestamp = tt.want.Timestamp
			require.Equal(t, tt.want, got)
		})
	}

	ev := m.convertMouse(tea.MouseMsg{Ctrl: true, Shift: true, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	require.Equal(t, ui.ModCtrl|ui.ModShift, ev.KeyModifiers)
}

func TestModel_FrameErrorShowsInView(t *testing.T) {
	boom := errors.New("boom")
	m := New(func(s *ui.Scope) {
		s.Node("broken", func(s *ui.Scope) {
			s.Measure(func(ui.MeasureInput) (ui.ComputedData, error) {
				return ui.ZeroSize, boom
			})
		})
	}, 10, 2)

	require.ErrorIs(t, m.Err(), boom)
	require.True(t, strings.Contains(m.View(), "boom"))
}

func TestModel_WindowSize(t *testing.T) {
	m, _, _ := newEditorModel(t, "")

	m.Update(tea.WindowSizeMsg{Width: 30, Height: 4})

	w, h := m.Size()
	require.Equal(t, 30, w)
	require.Equal(t, 4, h)
	require.Len(t, strings.Split(m.View(), "\n"), 4)
}

func TestModel_CursorBlinkNeedsActiveTimer(t *testing.T) {
	m := New(func(*ui.Scope) {}, 1, 1)
	require.Nil(t, m.CursorBlink())

	m, state, _ := newEditorModel(t, "")
	state.RequestFocus()
	require.NotNil(t, m.CursorBlink())
}
