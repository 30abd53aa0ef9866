package core

import (
	"errors"
	"fmt"
)

var (
	ErrEndOfBuffer     = errors.New("end of buffer")
	ErrStartOfBuffer   = errors.New("start of buffer")
	ErrEndOfLine       = errors.New("end of line")
	ErrStartOfLine     = errors.New("start of line")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidMotion   = errors.New("invalid motion")
	ErrDeleteRunes     = errors.New("cannot delete runes")
	ErrUndoFailed      = errors.New("already at oldest change")
	ErrRedoFailed      = errors.New("already at newest change")
	ErrUnknownAction   = errors.New("unknown action")
)

type ErrorId int

const (
	ErrEndOfBufferId ErrorId = iota
	ErrStartOfBufferId
	ErrEndOfLineId
	ErrStartOfLineId
	ErrInvalidPositionId
	ErrInvalidMotionId
	ErrDeleteRunesId
	ErrUndoFailedId
	ErrRedoFailedId
	ErrUnknownActionId
)

// Error pairs a sentinel with an id so hosts can switch on the failure kind
// without string matching.
type Error struct {
	id  ErrorId
	err error
}

func newError(id ErrorId, err error) *Error {
	return &Error{id: id, err: err}
}

func (e *Error) ID() ErrorId {
	return e.id
}

func (e *Error) Error() string {
	return fmt.Sprintf("editor error %d: %v", e.id, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsBoundary reports whether err only says a motion hit the edge of a line or
// of the buffer. Such errors are expected while editing and are not failures.
func IsBoundary(err error) bool {
	return errors.Is(err, ErrEndOfBuffer) ||
		errors.Is(err, ErrStartOfBuffer) ||
		errors.Is(err, ErrEndOfLine) ||
		errors.Is(err, ErrStartOfLine) ||
		errors.Is(err, ErrUndoFailed) ||
		errors.Is(err, ErrRedoFailed)
}
