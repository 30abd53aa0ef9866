package core

import (
	"fmt"
	"slices"
	"strings"
)

// SelectionKind says how the selection grows from its anchor.
type SelectionKind int

const (
	SelectionNone SelectionKind = iota
	SelectionNormal
	SelectionWord // grows to whole words, from a double click
	SelectionLine // grows to whole lines, from a triple click
)

// Selection is anchored at Anchor and extends to the cursor.
type Selection struct {
	Kind   SelectionKind
	Anchor Position
}

// Clipboard is implemented by hosts that can read and write system text.
type Clipboard interface {
	Write(string) error
	Read() (string, error)
}

// Editor owns a buffer together with its selection, wrapping layout, scroll
// offset and undo history. It is not safe for concurrent use; callers
// serialise access.
type Editor struct {
	buffer    Buffer
	selection Selection
	history   *history

	lineHeight int
	width      int // wrap width in cells, <= 0 means unbounded
	height     int // viewport height in cells, <= 0 means unbounded
	scroll     int // first visible visual line

	layout         []LayoutRun // every visual line, LineTop measured from the text top
	layoutRevision uint64
	layoutWidth    int
	layoutValid    bool
	cursorMoved    bool
}

type Option func(*Editor)

// WithLineHeight sets the height of one visual line in cells.
func WithLineHeight(h int) Option {
	return func(e *Editor) {
		e.lineHeight = max(h, 1)
	}
}

// WithMaxHistory caps the number of undo snapshots. Zero keeps all of them.
func WithMaxHistory(n int) Option {
	return func(e *Editor) {
		e.history.max = n
	}
}

// WithText sets the initial content.
func WithText(text string) Option {
	return func(e *Editor) {
		e.buffer.SetContent(text)
	}
}

// New creates an editor over an empty buffer.
func New(opts ...Option) *Editor {
	e := &Editor{
		buffer:     NewBuffer(),
		history:    newHistory(defaultMaxHistory),
		lineHeight: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.history.save(e.buffer)
	return e
}

func (e *Editor) Buffer() Buffer {
	return e.buffer
}

// Text returns the whole content joined with '\n'.
func (e *Editor) Text() string {
	return e.buffer.GetCurrentContent()
}

// SetText replaces the content and resets cursor, selection, scroll and history.
func (e *Editor) SetText(text string) {
	e.buffer.SetContent(text)
	e.buffer.SetCursor(Cursor{Preferred: -1})
	e.selection = Selection{}
	e.scroll = 0
	e.history.reset(e.buffer)
	e.cursorMoved = true
}

// SetTextReactive overwrites the content while keeping cursor and selection
// where they are (clamped to the new text). attrs becomes the default styling.
// Identical text leaves the buffer and any highlighting untouched.
func (e *Editor) SetTextReactive(text string, attrs Attrs) {
	e.buffer.SetDefaultAttrs(attrs)
	if text == e.buffer.GetCurrentContent() {
		return
	}

	cursor := e.buffer.GetCursor()
	e.buffer.SetContent(text)
	e.buffer.SetCursor(cursor)
	e.selection.Anchor = e.clamp(e.selection.Anchor)
	e.history.amend(e.buffer)
	e.cursorMoved = true
}

func (e *Editor) Cursor() Cursor {
	return e.buffer.GetCursor()
}

// SetCursor moves the cursor, clamped to the buffer.
func (e *Editor) SetCursor(pos Position) {
	e.buffer.SetCursor(Cursor{Position: pos, Preferred: -1})
	e.cursorMoved = true
}

func (e *Editor) Selection() Selection {
	return e.selection
}

func (e *Editor) SetSelection(sel Selection) {
	sel.Anchor = e.clamp(sel.Anchor)
	e.selection = sel
}

// SelectionBounds returns the ordered selected range, end exclusive. Word and
// line selections are widened to their units.
func (e *Editor) SelectionBounds() (start, end Position, ok bool) {
	cursor := e.buffer.GetCursor().Position
	switch e.selection.Kind {
	case SelectionNormal:
		start, end = NormalizeSelection(e.selection.Anchor, cursor)
	case SelectionWord:
		start, end = NormalizeSelection(e.selection.Anchor, cursor)
		start.Col, _ = WordBounds(e.buffer.GetLineRunes(start.Row), start.Col)
		_, end.Col = WordBounds(e.buffer.GetLineRunes(end.Row), end.Col)
	case SelectionLine:
		start, end = NormalizeSelection(e.selection.Anchor, cursor)
		start.Col = 0
		end.Col = e.buffer.LineRuneCount(end.Row)
	default:
		return Position{}, Position{}, false
	}
	return start, end, true
}

// SelectedText returns the selected text, if any non-empty range is selected.
func (e *Editor) SelectedText() (string, bool) {
	start, end, ok := e.SelectionBounds()
	if !ok || start == end {
		return "", false
	}
	return e.buffer.TextRange(start, end), true
}

func (e *Editor) LineHeight() int {
	return e.lineHeight
}

// SetSize sets the wrap width and viewport height in cells. Values <= 0 mean
// unbounded.
func (e *Editor) SetSize(width, height int) {
	if width != e.width {
		e.layoutValid = false
	}
	e.width = width
	e.height = height
}

// Scroll returns the index of the first visible visual line.
func (e *Editor) Scroll() int {
	return e.scroll
}

// ShapeAsNeeded rebuilds the layout if text, styling or width changed and
// scrolls the cursor into view after it moved.
func (e *Editor) ShapeAsNeeded() {
	e.ensureLayout()
	e.clampScroll()

	if !e.cursorMoved {
		return
	}
	e.cursorMoved = false

	idx, _ := e.visualIndexOf(e.buffer.GetCursor().Position)
	if idx < e.scroll {
		e.scroll = idx
	}
	if vis := e.visibleLines(); vis > 0 && idx >= e.scroll+vis {
		e.scroll = idx - vis + 1
	}
}

// LayoutRuns returns the visible visual lines with LineTop relative to the
// viewport top.
func (e *Editor) LayoutRuns() []LayoutRun {
	e.ShapeAsNeeded()

	end := len(e.layout)
	if vis := e.visibleLines(); vis > 0 {
		end = min(end, e.scroll+vis)
	}

	runs := make([]LayoutRun, 0, max(end-e.scroll, 0))
	for i := e.scroll; i < end; i++ {
		run := e.layout[i]
		run.LineTop = (i - e.scroll) * e.lineHeight
		runs = append(runs, run)
	}
	return runs
}

// TextData returns the visible runs and the size of the whole shaped text.
func (e *Editor) TextData() TextData {
	runs := e.LayoutRuns()

	width := 0
	for _, run := range e.layout {
		width = max(width, run.LineW)
	}

	return TextData{
		Runs:       runs,
		Width:      width,
		Height:     len(e.layout) * e.lineHeight,
		LineHeight: e.lineHeight,
	}
}

// CursorPosition returns the cursor's cell position relative to the viewport,
// or false when the cursor is scrolled out of view.
func (e *Editor) CursorPosition() (x, y int, ok bool) {
	e.ShapeAsNeeded()

	idx, x := e.visualIndexOf(e.buffer.GetCursor().Position)
	if idx < e.scroll {
		return 0, 0, false
	}
	if vis := e.visibleLines(); vis > 0 && idx >= e.scroll+vis {
		return 0, 0, false
	}
	return x, (idx - e.scroll) * e.lineHeight, true
}

// Clone returns an independent copy, including history and scroll state.
func (e *Editor) Clone() *Editor {
	c := *e
	c.buffer = e.buffer.Clone()
	c.history = e.history.clone()
	c.layout = slices.Clone(e.layout)
	return &c
}

// Apply runs one action. Hitting the edge of a line or of the buffer is
// reported with a boundary error (see IsBoundary) and leaves the buffer as is.
func (e *Editor) Apply(a Action) error {
	e.ensureLayout()

	switch a := a.(type) {
	case MotionAction:
		return e.motion(a.Motion, a.Extend)

	case InsertAction:
		return e.edit(func() error {
			return e.insertRunes([]rune{a.Rune})
		})

	case InsertStringAction:
		return e.edit(func() error {
			return e.insertRunes([]rune(a.Text))
		})

	case EnterAction:
		return e.edit(func() error {
			return e.insertRunes([]rune{'\n'})
		})

	case BackspaceAction:
		return e.edit(e.backspace)

	case DeleteAction:
		return e.edit(e.deleteForward)

	case DeleteSelectionAction:
		return e.edit(func() error {
			_, err := e.deleteSelection()
			return err
		})

	case IndentAction:
		return e.edit(e.indent)

	case UnindentAction:
		return e.edit(e.unindent)

	case EscapeAction:
		e.selection = Selection{}
		return nil

	case ClickAction:
		e.selection = Selection{}
		e.SetCursor(e.hit(a.X, a.Y))
		return nil

	case DoubleClickAction:
		pos := e.hit(a.X, a.Y)
		e.SetCursor(pos)
		e.selection = Selection{Kind: SelectionWord, Anchor: pos}
		return nil

	case TripleClickAction:
		pos := e.hit(a.X, a.Y)
		e.SetCursor(pos)
		e.selection = Selection{Kind: SelectionLine, Anchor: pos}
		return nil

	case DragAction:
		if e.selection.Kind == SelectionNone {
			e.selection = Selection{Kind: SelectionNormal, Anchor: e.buffer.GetCursor().Position}
		}
		e.SetCursor(e.hit(a.X, a.Y))
		return nil

	case ScrollAction:
		e.scroll += a.Lines
		e.clampScroll()
		return nil

	case UndoAction:
		return e.restore(e.history.undo)

	case RedoAction:
		return e.restore(e.history.redo)

	default:
		return newError(ErrUnknownActionId, fmt.Errorf("%w: %T", ErrUnknownAction, a))
	}
}

// edit runs a text mutation and records a history snapshot afterwards.
func (e *Editor) edit(fn func() error) error {
	err := fn()
	e.history.save(e.buffer)
	e.cursorMoved = true
	return err
}

func (e *Editor) restore(step func(Buffer) error) error {
	if err := step(e.buffer); err != nil {
		return err
	}
	e.selection = Selection{}
	e.cursorMoved = true
	return nil
}

func (e *Editor) motion(m Motion, extend bool) error {
	if extend {
		if e.selection.Kind == SelectionNone {
			e.selection = Selection{Kind: SelectionNormal, Anchor: e.buffer.GetCursor().Position}
		}
	} else {
		e.selection = Selection{}
	}

	cursor := e.buffer.GetCursor()
	var err error
	switch m {
	case MotionLeft:
		err = cursor.MoveLeft(e.buffer)
	case MotionRight:
		err = cursor.MoveRight(e.buffer)
	case MotionUp:
		return e.vertical(-1)
	case MotionDown:
		return e.vertical(1)
	case MotionPageUp:
		return e.vertical(-max(e.visibleLines(), 1))
	case MotionPageDown:
		return e.vertical(max(e.visibleLines(), 1))
	case MotionHome:
		cursor.MoveToFirstNonBlank(e.buffer)
	case MotionEnd:
		cursor.MoveToLineEnd(e.buffer)
	case MotionPreviousWord:
		err = cursor.MoveWordBackward(e.buffer)
	case MotionNextWord:
		err = cursor.MoveWordForward(e.buffer)
	case MotionBufferStart:
		cursor.MoveToBufferStart()
	case MotionBufferEnd:
		cursor.MoveToBufferEnd(e.buffer)
	default:
		return newError(ErrInvalidMotionId, fmt.Errorf("%w: %d", ErrInvalidMotion, m))
	}

	e.buffer.SetCursor(cursor)
	e.cursorMoved = true
	return err
}

// vertical moves by delta visual lines, keeping the preferred cell column.
func (e *Editor) vertical(delta int) error {
	cursor := e.buffer.GetCursor()
	idx, x := e.visualIndexOf(cursor.Position)
	if cursor.Preferred < 0 {
		cursor.Preferred = x
	}

	target := idx + delta
	switch {
	case delta < 0 && idx == 0:
		return ErrStartOfBuffer
	case delta > 0 && idx == len(e.layout)-1:
		return ErrEndOfBuffer
	}
	target = min(max(target, 0), len(e.layout)-1)

	cursor.Position = e.hitRun(e.layout[target], cursor.Preferred)
	e.buffer.SetCursor(cursor)
	e.cursorMoved = true
	return nil
}

func (e *Editor) insertRunes(runes []rune) error {
	if _, err := e.deleteSelection(); err != nil {
		return err
	}

	pos := e.buffer.GetCursor().Position
	if err := e.buffer.InsertRunesAt(pos.Row, pos.Col, runes); err != nil {
		return err
	}

	if i := strings.LastIndexByte(string(runes), '\n'); i >= 0 {
		pos.Row += strings.Count(string(runes), "\n")
		pos.Col = len([]rune(string(runes)[i+1:]))
	} else {
		pos.Col += len(runes)
	}
	e.buffer.SetCursor(Cursor{Position: pos, Preferred: -1})
	return nil
}

// deleteSelection removes the selected range and reports whether anything was
// removed. The selection is cleared either way.
func (e *Editor) deleteSelection() (bool, error) {
	start, end, ok := e.SelectionBounds()
	e.selection = Selection{}
	if !ok || start == end {
		return false, nil
	}

	count := len([]rune(e.buffer.TextRange(start, end)))
	if err := e.buffer.DeleteRunesAt(start.Row, start.Col, count); err != nil {
		return false, err
	}
	e.buffer.SetCursor(Cursor{Position: start, Preferred: -1})
	return true, nil
}

func (e *Editor) backspace() error {
	if deleted, err := e.deleteSelection(); deleted || err != nil {
		return err
	}

	pos := e.buffer.GetCursor().Position
	switch {
	case pos.Col > 0:
		pos.Col--
	case pos.Row > 0:
		pos.Row--
		pos.Col = e.buffer.LineRuneCount(pos.Row)
	default:
		return ErrStartOfBuffer
	}

	if err := e.buffer.DeleteRunesAt(pos.Row, pos.Col, 1); err != nil {
		return err
	}
	e.buffer.SetCursor(Cursor{Position: pos, Preferred: -1})
	return nil
}

func (e *Editor) deleteForward() error {
	if deleted, err := e.deleteSelection(); deleted || err != nil {
		return err
	}

	pos := e.buffer.GetCursor().Position
	if pos.Col >= e.buffer.LineRuneCount(pos.Row) && pos.Row >= e.buffer.LineCount()-1 {
		return ErrEndOfBuffer
	}
	return e.buffer.DeleteRunesAt(pos.Row, pos.Col, 1)
}

// selectedRows returns the rows covered by a multi-line selection, or false
// when the selection is absent or within one line.
func (e *Editor) selectedRows() (first, last int, ok bool) {
	start, end, ok := e.SelectionBounds()
	if !ok || start.Row == end.Row {
		return 0, 0, false
	}
	return start.Row, end.Row, true
}

func (e *Editor) indent() error {
	first, last, ok := e.selectedRows()
	if !ok {
		pos := e.buffer.GetCursor().Position
		spaces := TabWidth - pos.Col%TabWidth
		return e.insertRunes([]rune(strings.Repeat(" ", spaces)))
	}

	pad := []rune(strings.Repeat(" ", TabWidth))
	for row := first; row <= last; row++ {
		if err := e.buffer.InsertRunesAt(row, 0, pad); err != nil {
			return err
		}
	}

	// Edges at column 0 stay there so the selection grows over the new indent
	cursor := e.buffer.GetCursor()
	if cursor.Position.Col > 0 {
		cursor.Position.Col += TabWidth
	}
	e.buffer.SetCursor(cursor)
	if e.selection.Anchor.Col > 0 {
		e.selection.Anchor.Col += TabWidth
	}
	return nil
}

func (e *Editor) unindent() error {
	first, last, ok := e.selectedRows()
	if !ok {
		first = e.buffer.GetCursor().Position.Row
		last = first
	}

	cursor := e.buffer.GetCursor()
	for row := first; row <= last; row++ {
		line := e.buffer.GetLineRunes(row)
		n := 0
		if len(line) > 0 && line[0] == '\t' {
			n = 1
		} else {
			for n < len(line) && n < TabWidth && line[n] == ' ' {
				n++
			}
		}
		if n == 0 {
			continue
		}
		if err := e.buffer.DeleteRunesAt(row, 0, n); err != nil {
			return err
		}
		if cursor.Position.Row == row {
			cursor.Position.Col = max(cursor.Position.Col-n, 0)
		}
		if e.selection.Anchor.Row == row {
			e.selection.Anchor.Col = max(e.selection.Anchor.Col-n, 0)
		}
	}
	e.buffer.SetCursor(cursor)
	return nil
}

// --- Layout ---

func (e *Editor) ensureLayout() {
	if e.layoutValid && e.layoutRevision == e.buffer.Revision() && e.layoutWidth == e.width {
		return
	}

	def := e.buffer.DefaultAttrs()
	layout := make([]LayoutRun, 0, e.buffer.LineCount())
	for row := range e.buffer.LineCount() {
		for _, run := range shapeLine(row, e.buffer.GetLineRunes(row), e.buffer.LineSpans(row), def, e.width) {
			run.LineTop = len(layout) * e.lineHeight
			run.LineHeight = e.lineHeight
			layout = append(layout, run)
		}
	}

	e.layout = layout
	e.layoutRevision = e.buffer.Revision()
	e.layoutWidth = e.width
	e.layoutValid = true
}

func (e *Editor) visibleLines() int {
	if e.height <= 0 {
		return 0
	}
	return max(e.height/e.lineHeight, 1)
}

func (e *Editor) clampScroll() {
	maxScroll := 0
	if vis := e.visibleLines(); vis > 0 {
		maxScroll = max(len(e.layout)-vis, 0)
	}
	e.scroll = min(max(e.scroll, 0), maxScroll)
}

// visualIndexOf finds the visual line holding pos and the cell x of pos on it.
func (e *Editor) visualIndexOf(pos Position) (idx, x int) {
	e.ensureLayout()
	for i, run := range e.layout {
		if run.LineIndex != pos.Row || pos.Col < run.StartCol {
			continue
		}
		if pos.Col >= run.EndCol && !run.LastSegment {
			continue
		}
		for _, g := range run.Glyphs {
			if g.Start == pos.Col {
				return i, g.X
			}
		}
		if n := len(run.Glyphs); n > 0 {
			last := run.Glyphs[n-1]
			return i, last.X + last.W
		}
		return i, 0
	}
	return max(len(e.layout)-1, 0), 0
}

// hit maps a cell relative to the viewport to a buffer position.
func (e *Editor) hit(x, y int) Position {
	e.ensureLayout()
	if len(e.layout) == 0 {
		return Position{}
	}
	idx := e.scroll + y/e.lineHeight
	idx = min(max(idx, 0), len(e.layout)-1)
	return e.hitRun(e.layout[idx], x)
}

func (e *Editor) hitRun(run LayoutRun, x int) Position {
	for _, g := range run.Glyphs {
		if x < g.X+g.W {
			if g.W <= 1 || (x-g.X)*2 < g.W {
				return Position{Row: run.LineIndex, Col: g.Start}
			}
			return Position{Row: run.LineIndex, Col: g.End}
		}
	}

	col := run.EndCol
	if !run.LastSegment {
		col = max(run.EndCol-1, run.StartCol)
	}
	return Position{Row: run.LineIndex, Col: col}
}

func (e *Editor) clamp(pos Position) Position {
	pos.Row = min(max(pos.Row, 0), max(e.buffer.LineCount()-1, 0))
	pos.Col = min(max(pos.Col, 0), e.buffer.LineRuneCount(pos.Row))
	return pos
}
