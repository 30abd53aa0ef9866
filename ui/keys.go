package ui

import (
	"strings"
)

// --- KeyCode, KeyModifiers, Key ---

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Editing keys
	KeyDelete
	KeyInsert
)

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
	ModSuper
)

func (m KeyModifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m KeyModifiers) Alt() bool   { return m&ModAlt != 0 }
func (m KeyModifiers) Shift() bool { return m&ModShift != 0 }
func (m KeyModifiers) Super() bool { return m&ModSuper != 0 }

// KeyState says whether a key went down or up.
type KeyState int

const (
	KeyPressed KeyState = iota
	KeyReleased
)

// KeyEvent represents a keyboard input event
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
	State     KeyState
}

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyEscape:    "esc",
	KeySpace:     " ",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
}

// String names the key the way terminal key bindings spell it, e.g.
// "ctrl+a", "shift+left" or "x". Shift is implied by printable runes and is
// not spelled out for them.
func (k KeyEvent) String() string {
	var sb strings.Builder

	if k.Modifiers.Alt() {
		sb.WriteString("alt+")
	}
	if k.Modifiers.Super() {
		sb.WriteString("super+")
	}
	if k.Modifiers.Ctrl() {
		sb.WriteString("ctrl+")
	}

	if k.Rune != 0 && k.Key != KeySpace && k.Key != KeyTab {
		r := k.Rune
		if k.Modifiers.Ctrl() {
			r = []rune(strings.ToLower(string(r)))[0]
		}
		sb.WriteRune(r)
		return sb.String()
	}

	if k.Modifiers.Shift() {
		sb.WriteString("shift+")
	}
	if name, ok := keyNames[k.Key]; ok {
		sb.WriteString(name)
	} else {
		sb.WriteString("unknown")
	}
	return sb.String()
}

// Text returns the character the key types, if any.
func (k KeyEvent) Text() (rune, bool) {
	if k.Modifiers.Ctrl() || k.Modifiers.Alt() || k.Modifiers.Super() {
		return 0, false
	}
	switch {
	case k.Key == KeySpace:
		return ' ', true
	case k.Rune != 0 && k.Key == KeyUnknown:
		return k.Rune, true
	}
	return 0, false
}
