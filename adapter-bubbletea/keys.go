package adapter_bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/synedit/ui"
)

var namedKeys = map[tea.KeyType]ui.KeyEvent{
	tea.KeyUp:       {Key: ui.KeyUp},
	tea.KeyDown:     {Key: ui.KeyDown},
	tea.KeyLeft:     {Key: ui.KeyLeft},
	tea.KeyRight:    {Key: ui.KeyRight},
	tea.KeyHome:     {Key: ui.KeyHome},
	tea.KeyEnd:      {Key: ui.KeyEnd},
	tea.KeyPgUp:     {Key: ui.KeyPageUp},
	tea.KeyPgDown:   {Key: ui.KeyPageDown},
	tea.KeyDelete:   {Key: ui.KeyDelete},
	tea.KeyInsert:   {Key: ui.KeyInsert},
	tea.KeySpace:    {Key: ui.KeySpace, Rune: ' '},
	tea.KeyShiftTab: {Key: ui.KeyTab, Modifiers: ui.ModShift},

	tea.KeyShiftUp:    {Key: ui.KeyUp, Modifiers: ui.ModShift},
	tea.KeyShiftDown:  {Key: ui.KeyDown, Modifiers: ui.ModShift},
	tea.KeyShiftLeft:  {Key: ui.KeyLeft, Modifiers: ui.ModShift},
	tea.KeyShiftRight: {Key: ui.KeyRight, Modifiers: ui.ModShift},
	tea.KeyShiftHome:  {Key: ui.KeyHome, Modifiers: ui.ModShift},
	tea.KeyShiftEnd:   {Key: ui.KeyEnd, Modifiers: ui.ModShift},

	tea.KeyCtrlUp:     {Key: ui.KeyUp, Modifiers: ui.ModCtrl},
	tea.KeyCtrlDown:   {Key: ui.KeyDown, Modifiers: ui.ModCtrl},
	tea.KeyCtrlLeft:   {Key: ui.KeyLeft, Modifiers: ui.ModCtrl},
	tea.KeyCtrlRight:  {Key: ui.KeyRight, Modifiers: ui.ModCtrl},
	tea.KeyCtrlHome:   {Key: ui.KeyHome, Modifiers: ui.ModCtrl},
	tea.KeyCtrlEnd:    {Key: ui.KeyEnd, Modifiers: ui.ModCtrl},
	tea.KeyCtrlPgUp:   {Key: ui.KeyPageUp, Modifiers: ui.ModCtrl},
	tea.KeyCtrlPgDown: {Key: ui.KeyPageDown, Modifiers: ui.ModCtrl},

	tea.KeyCtrlShiftUp:    {Key: ui.KeyUp, Modifiers: ui.ModCtrl | ui.ModShift},
	tea.KeyCtrlShiftDown:  {Key: ui.KeyDown, Modifiers: ui.ModCtrl | ui.ModShift},
	tea.KeyCtrlShiftLeft:  {Key: ui.KeyLeft, Modifiers: ui.ModCtrl | ui.ModShift},
	tea.KeyCtrlShiftRight: {Key: ui.KeyRight, Modifiers: ui.ModCtrl | ui.ModShift},
	tea.KeyCtrlShiftHome:  {Key: ui.KeyHome, Modifiers: ui.ModCtrl | ui.ModShift},
	tea.KeyCtrlShiftEnd:   {Key: ui.KeyEnd, Modifiers: ui.ModCtrl | ui.ModShift},
}

// convertBubbleKey turns a key message into key events. Typed runes arrive
// batched, so one message can produce several events.
func convertBubbleKey(msg tea.KeyMsg) []ui.KeyEvent {
	var mods ui.KeyModifiers
	if msg.Alt {
		mods |= ui.ModAlt
	}

	key := ui.KeyEvent{Modifiers: mods}

	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]ui.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, ui.KeyEvent{Rune: r, Modifiers: mods})
		}
		return keys
	case tea.KeyEnter:
		key.Key = ui.KeyEnter
	case tea.KeyTab:
		key.Key = ui.KeyTab
		key.Rune = '\t'
	case tea.KeyBackspace:
		key.Key = ui.KeyBackspace
	case tea.KeyEsc:
		key.Key = ui.KeyEscape
	default:
		if named, ok := namedKeys[msg.Type]; ok {
			named.Modifiers |= mods
			return []ui.KeyEvent{named}
		}
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			key.Rune = 'a' + rune(msg.Type-tea.KeyCtrlA)
			key.Modifiers |= ui.ModCtrl
			break
		}
		return nil
	}

	return []ui.KeyEvent{key}
}
