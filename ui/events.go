package ui

import (
	"time"

	"github.com/ionut-t/synedit/core"
)

// CursorEventKind is the type of a pointer event.
type CursorEventKind int

const (
	CursorPressed CursorEventKind = iota
	CursorReleased
	CursorScroll
)

// PressKey names the pointer button.
type PressKey int

const (
	PressLeft PressKey = iota
	PressRight
	PressMiddle
)

// CursorEvent is a pointer press, release or scroll. Scroll deltas are in
// lines; positive DeltaY means the content should move down (wheel up).
type CursorEvent struct {
	Kind      CursorEventKind
	Button    PressKey
	DeltaX    float32
	DeltaY    float32
	Timestamp time.Time
}

// ImeEventKind is the type of an input method event.
type ImeEventKind int

const (
	ImeEnabled ImeEventKind = iota
	ImePreedit
	ImeCommit
	ImeDisabled
)

// ImeEvent carries composition text. Text is the whole preedit string for
// ImePreedit and the final text for ImeCommit.
type ImeEvent struct {
	Kind ImeEventKind
	Text string
}

// CursorIcon is the pointer shape a node asks for.
type CursorIcon int

const (
	CursorIconDefault CursorIcon = iota
	CursorIconText
	CursorIconPointer
)

// ImeRequest asks the host to enable the input method over an area.
type ImeRequest struct {
	Size     ComputedData
	Position *PxPosition // absolute, filled in by the runtime when nil
}

// WindowRequests are written by input handlers and read by the host after
// dispatch.
type WindowRequests struct {
	CursorIcon CursorIcon
	ImeRequest *ImeRequest
}

// InputEvents is what a host collected since the last dispatch.
type InputEvents struct {
	CursorPosition *PxPosition // absolute, nil when the pointer is outside the window
	CursorEvents   []CursorEvent
	KeyboardEvents []KeyEvent
	KeyModifiers   KeyModifiers
	ImeEvents      []ImeEvent
	Clipboard      core.Clipboard
	Now            time.Time
}

// InputContext is handed to each input handler. The event slices are shared
// across handlers of one dispatch, so clearing them consumes the events.
type InputContext struct {
	ComputedData   ComputedData
	CursorPosition *PxPosition // relative to the node, nil when unknown
	CursorEvents   []CursorEvent
	KeyboardEvents []KeyEvent
	KeyModifiers   KeyModifiers
	ImeEvents      []ImeEvent
	Requests       *WindowRequests
	Clipboard      core.Clipboard
	Now            time.Time

	origin PxPosition
}

// Origin returns the node's absolute position.
func (in *InputContext) Origin() PxPosition {
	return in.origin
}

func (in *InputContext) ClearCursorEvents() {
	in.CursorEvents = nil
}

func (in *InputContext) ClearKeyboardEvents() {
	in.KeyboardEvents = nil
}

func (in *InputContext) ClearImeEvents() {
	in.ImeEvents = nil
}

// InputHandlerFunc handles the input of one node.
type InputHandlerFunc func(in *InputContext)
