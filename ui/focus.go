package ui

import "sync/atomic"

// Focus marks whether a component owns keyboard input. Only one component
// should hold focus at a time; the application enforces that.
type Focus struct {
	focused atomic.Bool
}

func NewFocus() *Focus {
	return &Focus{}
}

func (f *Focus) IsFocused() bool {
	return f.focused.Load()
}

func (f *Focus) RequestFocus() {
	f.focused.Store(true)
}

func (f *Focus) Unfocus() {
	f.focused.Store(false)
}
