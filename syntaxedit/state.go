package syntaxedit

import (
	"slices"
	"sync"
	"time"

	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/ui"
)

// DefaultSelectionColor is the highlight drawn behind selected text.
var DefaultSelectionColor = ui.RGBA(0.5, 0.7, 1.0, 0.4)

// EditorState is the state of one editor instance, shared between the
// measure pass and the input handler. The embedding application owns it and
// keeps it across frames.
type EditorState struct {
	mu sync.RWMutex

	editor     *core.Editor
	focus      *ui.Focus
	blink      *ui.BlinkTimer
	lineHeight ui.Px

	dragging          bool
	lastClickPosition *ui.PxPosition
	lastClickTime     time.Time
	clickCount        int

	selectionColor ui.Color
	selectionRects []RectDef
	preedit        *string
}

type StateOption func(*stateOptions)

type stateOptions struct {
	selectionColor ui.Color
	text           string
	maxHistory     int
}

// WithSelectionColor overrides DefaultSelectionColor.
func WithSelectionColor(c ui.Color) StateOption {
	return func(o *stateOptions) {
		o.selectionColor = c
	}
}

// WithText sets the initial content.
func WithText(text string) StateOption {
	return func(o *stateOptions) {
		o.text = text
	}
}

// WithMaxHistory caps the number of undo steps kept.
func WithMaxHistory(n int) StateOption {
	return func(o *stateOptions) {
		o.maxHistory = n
	}
}

// NewEditorState creates the state for one editor whose lines are lineHeight tall.
func NewEditorState(lineHeight ui.Dp, opts ...StateOption) *EditorState {
	o := stateOptions{selectionColor: DefaultSelectionColor}
	for _, opt := range opts {
		opt(&o)
	}

	lh := max(lineHeight.ToPx(), 1)
	edOpts := []core.Option{core.WithLineHeight(int(lh)), core.WithText(o.text)}
	if o.maxHistory > 0 {
		edOpts = append(edOpts, core.WithMaxHistory(o.maxHistory))
	}

	return &EditorState{
		editor:         core.New(edOpts...),
		focus:          ui.NewFocus(),
		blink:          ui.NewBlinkTimer(),
		lineHeight:     lh,
		selectionColor: o.selectionColor,
	}
}

// Text returns the current content.
func (s *EditorState) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editor.Text()
}

// SetText replaces the content, resetting cursor, selection and undo history.
func (s *EditorState) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.SetText(text)
	s.preedit = nil
}

func (s *EditorState) IsFocused() bool {
	return s.focus.IsFocused()
}

func (s *EditorState) RequestFocus() {
	s.focus.RequestFocus()
	s.blink.Reset()
}

func (s *EditorState) Unfocus() {
	s.focus.Unfocus()
}

func (s *EditorState) IsDragging() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dragging
}

func (s *EditorState) StartDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dragging = true
}

// StopDrag ends a drag. Calling it when not dragging does nothing.
func (s *EditorState) StopDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dragging = false
}

// LastClickPosition returns the text-relative position of the last press or
// drag update, if any.
func (s *EditorState) LastClickPosition() (ui.PxPosition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastClickPosition == nil {
		return ui.PxPosition{}, false
	}
	return *s.lastClickPosition, true
}

func (s *EditorState) UpdateLastClickPosition(pos ui.PxPosition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastClickPosition = &pos
}

func (s *EditorState) SelectionColor() ui.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectionColor
}

func (s *EditorState) SetSelectionColor(c ui.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectionColor = c
}

// SelectionRects returns the viewport-clipped selection rectangles computed by
// the last measure pass.
func (s *EditorState) SelectionRects() []RectDef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.selectionRects)
}

// setSelectionRects stores rects and reports whether they differ from the
// stored ones.
func (s *EditorState) setSelectionRects(rects []RectDef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Equal(s.selectionRects, rects) {
		return false
	}
	s.selectionRects = rects
	return true
}

// PreeditString returns the composition in progress, if any.
func (s *EditorState) PreeditString() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.preedit == nil {
		return "", false
	}
	return *s.preedit, true
}

func (s *EditorState) LineHeight() ui.Px {
	return s.lineHeight
}

func (s *EditorState) Cursor() core.Cursor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editor.Cursor()
}

func (s *EditorState) Selection() core.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editor.Selection()
}

// SelectedText returns the selected text, if any.
func (s *EditorState) SelectedText() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editor.SelectedText()
}

func (s *EditorState) Blink() *ui.BlinkTimer {
	return s.blink
}

// textData wraps the text at maxWidth and limits the viewport to maxHeight,
// both in Px with PxMax meaning unbounded, and returns the shaped text.
func (s *EditorState) textData(maxWidth, maxHeight ui.Px) core.TextData {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := int(maxWidth), int(maxHeight)
	if maxWidth == ui.PxMax {
		w = 0
	}
	if maxHeight == ui.PxMax {
		h = 0
	}
	s.editor.SetSize(w, h)
	return s.editor.TextData()
}

// withEditor runs fn with the editor under the write lock.
func (s *EditorState) withEditor(fn func(ed *core.Editor)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.editor)
}
