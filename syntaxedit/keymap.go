package syntaxedit

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/internal/log"
	"github.com/ionut-t/synedit/ui"
)

// KeyMap defines the editor key bindings. It also implements help.KeyMap so
// hosts can show it in a help view.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	ShiftWordLeft, ShiftWordRight             key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding
	BufferStart, BufferEnd                    key.Binding
	PageUp, PageDown                          key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Indent, Unindent  key.Binding
	Escape            key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
	SelectAll        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Terminals vary between alt+arrows and ctrl+arrows for word movement
		WordLeft:       key.NewBinding(key.WithKeys("ctrl+left", "alt+left"), key.WithHelp("ctrl+←", "word left")),
		WordRight:      key.NewBinding(key.WithKeys("ctrl+right", "alt+right"), key.WithHelp("ctrl+→", "word right")),
		ShiftWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left", "alt+shift+left")),
		ShiftWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right", "alt+shift+right")),

		Home:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:         key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),
		ShiftHome:   key.NewBinding(key.WithKeys("shift+home")),
		ShiftEnd:    key.NewBinding(key.WithKeys("shift+end")),
		BufferStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "top")),
		BufferEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "bottom")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Indent:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Unindent:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "unindent")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a", "super+a"), key.WithHelp("ctrl+a", "select all")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SelectAll, k.Copy, k.Cut, k.Paste, k.Undo, k.Redo}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.WordLeft, k.WordRight},
		{k.Home, k.End, k.BufferStart, k.BufferEnd, k.PageUp, k.PageDown},
		{k.Backspace, k.Delete, k.Enter, k.Indent, k.Unindent, k.Escape},
		{k.SelectAll, k.Copy, k.Cut, k.Paste, k.Undo, k.Redo},
	}
}

// Actions maps one key event to the editor actions it triggers. Copy and cut
// talk to the clipboard through ed, which is only read. Released keys and
// unbound keys yield nothing.
func (k KeyMap) Actions(ev ui.KeyEvent, ed *core.Editor, clipboard core.Clipboard) []core.Action {
	if ev.State != ui.KeyPressed {
		return nil
	}

	motion := func(m core.Motion, extend bool) []core.Action {
		return []core.Action{core.MotionAction{Motion: m, Extend: extend}}
	}

	switch {
	case key.Matches(ev, k.Left):
		return motion(core.MotionLeft, false)
	case key.Matches(ev, k.Right):
		return motion(core.MotionRight, false)
	case key.Matches(ev, k.Up):
		return motion(core.MotionUp, false)
	case key.Matches(ev, k.Down):
		return motion(core.MotionDown, false)
	case key.Matches(ev, k.ShiftLeft):
		return motion(core.MotionLeft, true)
	case key.Matches(ev, k.ShiftRight):
		return motion(core.MotionRight, true)
	case key.Matches(ev, k.ShiftUp):
		return motion(core.MotionUp, true)
	case key.Matches(ev, k.ShiftDown):
		return motion(core.MotionDown, true)
	case key.Matches(ev, k.WordLeft):
		return motion(core.MotionPreviousWord, false)
	case key.Matches(ev, k.WordRight):
		return motion(core.MotionNextWord, false)
	case key.Matches(ev, k.ShiftWordLeft):
		return motion(core.MotionPreviousWord, true)
	case key.Matches(ev, k.ShiftWordRight):
		return motion(core.MotionNextWord, true)
	case key.Matches(ev, k.Home):
		return motion(core.MotionHome, false)
	case key.Matches(ev, k.End):
		return motion(core.MotionEnd, false)
	case key.Matches(ev, k.ShiftHome):
		return motion(core.MotionHome, true)
	case key.Matches(ev, k.ShiftEnd):
		return motion(core.MotionEnd, true)
	case key.Matches(ev, k.BufferStart):
		return motion(core.MotionBufferStart, false)
	case key.Matches(ev, k.BufferEnd):
		return motion(core.MotionBufferEnd, false)
	case key.Matches(ev, k.PageUp):
		return motion(core.MotionPageUp, false)
	case key.Matches(ev, k.PageDown):
		return motion(core.MotionPageDown, false)

	case key.Matches(ev, k.Backspace):
		return []core.Action{core.BackspaceAction{}}
	case key.Matches(ev, k.Delete):
		return []core.Action{core.DeleteAction{}}
	case key.Matches(ev, k.Enter):
		return []core.Action{core.EnterAction{}}
	case key.Matches(ev, k.Indent):
		return []core.Action{core.IndentAction{}}
	case key.Matches(ev, k.Unindent):
		return []core.Action{core.UnindentAction{}}
	case key.Matches(ev, k.Escape):
		return []core.Action{core.EscapeAction{}}
	case key.Matches(ev, k.Undo):
		return []core.Action{core.UndoAction{}}
	case key.Matches(ev, k.Redo):
		return []core.Action{core.RedoAction{}}

	case key.Matches(ev, k.Copy):
		copySelection(ed, clipboard)
		return nil
	case key.Matches(ev, k.Cut):
		if copySelection(ed, clipboard) {
			return []core.Action{core.DeleteSelectionAction{}}
		}
		return nil
	case key.Matches(ev, k.Paste):
		if clipboard == nil {
			return nil
		}
		text, err := clipboard.Read()
		if err != nil {
			log.ErrorErr(log.CatInput, "clipboard read failed", err)
			return nil
		}
		if text == "" {
			return nil
		}
		return []core.Action{core.InsertStringAction{Text: text}}
	}

	if r, ok := ev.Text(); ok {
		return []core.Action{core.InsertAction{Rune: r}}
	}
	return nil
}

// copySelection writes the selected text to the clipboard and reports
// whether it did.
func copySelection(ed *core.Editor, clipboard core.Clipboard) bool {
	text, ok := ed.SelectedText()
	if !ok || clipboard == nil {
		return false
	}
	if err := clipboard.Write(text); err != nil {
		log.ErrorErr(log.CatInput, "clipboard write failed", err)
		return false
	}
	return true
}
