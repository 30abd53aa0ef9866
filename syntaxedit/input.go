package syntaxedit

import (
	"math"
	"slices"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/internal/log"
	"github.com/ionut-t/synedit/ui"
)

// dispatcher turns the input of one frame into editor actions.
type dispatcher struct {
	state    *EditorState
	keys     KeyMap
	onChange OnChange
	inset    ui.Px // padding plus border between the node edge and the text
}

func newDispatcher(args SyntaxEditorArgs, state *EditorState, keys KeyMap) *dispatcher {
	return &dispatcher{
		state:    state,
		keys:     keys,
		onChange: args.OnChange,
		inset:    args.Padding.ToPx() + args.BorderWidth.ToPx(),
	}
}

func (d *dispatcher) handle(in *ui.InputContext) {
	size := in.ComputedData
	if pos := in.CursorPosition; pos != nil && inBounds(size, *pos) {
		in.Requests.CursorIcon = ui.CursorIconText
		d.handlePointer(in, *pos)
	}

	if !d.state.IsFocused() {
		return
	}

	d.handleKeyboard(in)
	d.handleIme(in)

	in.Requests.ImeRequest = &ui.ImeRequest{Size: size}
}

func inBounds(size ui.ComputedData, pos ui.PxPosition) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < size.Width && pos.Y < size.Height
}

// textPosition converts a node-relative position to text-relative cells,
// false when it falls on the padding or border.
func (d *dispatcher) textPosition(pos ui.PxPosition) (ui.PxPosition, bool) {
	p := ui.PxPosition{X: pos.X - d.inset, Y: pos.Y - d.inset}
	return p, p.X >= 0 && p.Y >= 0
}

func (d *dispatcher) handlePointer(in *ui.InputContext, pos ui.PxPosition) {
	state := d.state

	pressIdx := slices.IndexFunc(in.CursorEvents, func(ev ui.CursorEvent) bool {
		return ev.Kind == ui.CursorPressed
	})
	if pressIdx >= 0 {
		if !state.IsFocused() {
			state.RequestFocus()
		}

		if tp, ok := d.textPosition(pos); ok {
			at := in.CursorEvents[pressIdx].Timestamp
			if at.IsZero() {
				at = in.Now
			}

			click := state.HandleClick(tp, at)
			x, y := int(tp.X), int(tp.Y)
			var action core.Action
			switch click {
			case ClickDouble:
				action = core.DoubleClickAction{X: x, Y: y}
			case ClickTriple:
				action = core.TripleClickAction{X: x, Y: y}
			default:
				action = core.ClickAction{X: x, Y: y}
			}
			log.Debug(log.CatInput, "click", "type", click, "x", x, "y", y)

			d.apply(action)
			state.StartDrag()
		}
	}

	if state.IsDragging() {
		if tp, ok := d.textPosition(pos); ok {
			if last, ok := state.LastClickPosition(); !ok || last != tp {
				d.apply(core.DragAction{X: int(tp.X), Y: int(tp.Y)})
				state.UpdateLastClickPosition(tp)
			}
		}
	}

	if slices.ContainsFunc(in.CursorEvents, func(ev ui.CursorEvent) bool {
		return ev.Kind == ui.CursorReleased
	}) {
		state.StopDrag()
	}

	if !state.IsFocused() {
		return
	}

	for _, ev := range in.CursorEvents {
		if ev.Kind != ui.CursorScroll {
			continue
		}
		// Wheel up reports a positive delta and moves the view towards the top
		lines := int(math.Round(float64(-ev.DeltaY)))
		if lines != 0 {
			d.apply(core.ScrollAction{Lines: lines})
		}
	}

	in.ClearCursorEvents()
}

// apply runs a pointer action directly: it only moves the cursor, the
// selection or the view.
func (d *dispatcher) apply(a core.Action) {
	d.state.withEditor(func(ed *core.Editor) {
		if err := ed.Apply(a); err != nil && !core.IsBoundary(err) {
			log.ErrorErr(log.CatInput, "pointer action failed", err)
		}
	})
	d.state.blink.Reset()
}

func (d *dispatcher) handleKeyboard(in *ui.InputContext) {
	defer in.ClearKeyboardEvents()

	if len(in.KeyboardEvents) == 0 {
		return
	}
	d.state.blink.Reset()

	if slices.ContainsFunc(in.KeyboardEvents, d.isSelectAll(in.KeyModifiers)) {
		d.state.withEditor(selectAll)
		return
	}

	d.state.withEditor(func(ed *core.Editor) {
		var actions []core.Action
		for _, ev := range in.KeyboardEvents {
			actions = append(actions, d.keys.Actions(ev, ed, in.Clipboard)...)
		}
		for _, a := range actions {
			handleAction(ed, a, d.onChange)
		}
	})
}

// isSelectAll matches a pressed ctrl+a or super+a, taking the modifiers
// from either the event or the frame.
func (d *dispatcher) isSelectAll(mods ui.KeyModifiers) func(ui.KeyEvent) bool {
	return func(ev ui.KeyEvent) bool {
		if ev.State != ui.KeyPressed {
			return false
		}
		if ev.Modifiers&(ui.ModCtrl|ui.ModSuper) == 0 {
			ev.Modifiers |= mods & (ui.ModCtrl | ui.ModSuper)
		}
		return key.Matches(ev, d.keys.SelectAll)
	}
}

// selectAll anchors a selection at the start of the buffer and extends it to
// the end.
func selectAll(ed *core.Editor) {
	start := core.Position{Row: 0, Col: 0}
	ed.SetCursor(start)
	ed.SetSelection(core.Selection{Kind: core.SelectionNormal, Anchor: start})
	if err := ed.Apply(core.MotionAction{Motion: core.MotionBufferEnd, Extend: true}); err != nil && !core.IsBoundary(err) {
		log.ErrorErr(log.CatInput, "select all failed", err)
	}
}

// handleIme retracts the previous composition before inserting new text, so
// successive preedit updates replace each other.
func (d *dispatcher) handleIme(in *ui.InputContext) {
	defer in.ClearImeEvents()

	state := d.state
	for _, ev := range in.ImeEvents {
		switch ev.Kind {
		case ui.ImeCommit:
			state.withEditor(func(ed *core.Editor) {
				d.retractPreedit(ed)
				d.insert(ed, ev.Text)
			})
		case ui.ImePreedit:
			state.withEditor(func(ed *core.Editor) {
				d.retractPreedit(ed)
				d.insert(ed, ev.Text)
				if ev.Text != "" {
					text := ev.Text
					state.preedit = &text
				}
			})
		}
	}
}

// retractPreedit deletes the composition inserted by the last preedit.
// Callers hold the state's write lock.
func (d *dispatcher) retractPreedit(ed *core.Editor) {
	if d.state.preedit == nil {
		return
	}
	for range []rune(*d.state.preedit) {
		handleAction(ed, core.BackspaceAction{}, d.onChange)
	}
	d.state.preedit = nil
}

func (d *dispatcher) insert(ed *core.Editor, text string) {
	for _, r := range text {
		if r == '\n' {
			handleAction(ed, core.EnterAction{}, d.onChange)
			continue
		}
		handleAction(ed, core.InsertAction{Rune: r}, d.onChange)
	}
}
