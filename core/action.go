package core

// Motion names a cursor movement.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionHome
	MotionEnd
	MotionPageUp
	MotionPageDown
	MotionPreviousWord
	MotionNextWord
	MotionBufferStart
	MotionBufferEnd
)

func (m Motion) String() string {
	switch m {
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	case MotionHome:
		return "home"
	case MotionEnd:
		return "end"
	case MotionPageUp:
		return "page-up"
	case MotionPageDown:
		return "page-down"
	case MotionPreviousWord:
		return "previous-word"
	case MotionNextWord:
		return "next-word"
	case MotionBufferStart:
		return "buffer-start"
	case MotionBufferEnd:
		return "buffer-end"
	default:
		return "unknown"
	}
}

// Action is an edit, motion, selection or scroll request applied with
// Editor.Apply. The set is closed.
type Action interface {
	action()
}

type (
	// MotionAction moves the cursor. With Extend set the selection grows from
	// its anchor (starting one at the cursor if needed), otherwise it is cleared.
	MotionAction struct {
		Motion Motion
		Extend bool
	}
	// InsertAction types one rune, replacing the selection.
	InsertAction struct{ Rune rune }
	// InsertStringAction inserts text, replacing the selection (paste).
	InsertStringAction struct{ Text string }
	EnterAction        struct{}
	BackspaceAction    struct{}
	DeleteAction       struct{}
	// DeleteSelectionAction removes the selected text if any (cut).
	DeleteSelectionAction struct{}
	IndentAction          struct{}
	UnindentAction        struct{}
	// EscapeAction clears the selection.
	EscapeAction struct{}
	// Pointer actions take text-relative cell coordinates.
	ClickAction       struct{ X, Y int }
	DoubleClickAction struct{ X, Y int }
	TripleClickAction struct{ X, Y int }
	DragAction        struct{ X, Y int }
	// ScrollAction scrolls by whole lines, positive moves the view down.
	ScrollAction struct{ Lines int }
	UndoAction   struct{}
	RedoAction   struct{}
)

func (MotionAction) action()          {}
func (InsertAction) action()          {}
func (InsertStringAction) action()    {}
func (EnterAction) action()           {}
func (BackspaceAction) action()       {}
func (DeleteAction) action()          {}
func (DeleteSelectionAction) action() {}
func (IndentAction) action()          {}
func (UnindentAction) action()        {}
func (EscapeAction) action()          {}
func (ClickAction) action()           {}
func (DoubleClickAction) action()     {}
func (TripleClickAction) action()     {}
func (DragAction) action()            {}
func (ScrollAction) action()          {}
func (UndoAction) action()            {}
func (RedoAction) action()            {}
