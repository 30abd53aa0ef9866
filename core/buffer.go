package core

import (
	"fmt"
	"slices"
	"strings"
)

// Buffer represents the text content being edited (Using Runes)
type Buffer interface {
	// Content access
	GetLines() []string              // Get lines as strings
	GetLineRunes(lineNum int) []rune // Get specific line as runes (for editing)
	LineRuneCount(lineNum int) int   // Get rune count for a line
	GetCurrentContent() string       // Get entire buffer content as a string
	LineCount() int                  // Get number of lines
	IsEmpty() bool                   // Check if buffer is empty
	TextRange(start, end Position) string

	// Modification
	InsertRunesAt(row, col int, runes []rune) error // Insert runes (handles newlines)
	DeleteRunesAt(row, col int, count int) error    // Delete runes (handles newlines)
	SetContent(content string)                      // Replace everything, keeping the cursor clamped

	// Cursor
	GetCursor() Cursor
	SetCursor(Cursor)

	// Styling attached by a highlighter. Spans are reset whenever the text changes.
	DefaultAttrs() Attrs
	SetDefaultAttrs(attrs Attrs)
	LineSpans(lineNum int) []Span
	SetLineSpans(lineNum int, spans []Span)

	// Revision increases on every text or styling change.
	Revision() uint64
	// HighlightStamp records which text revision and grammar the current spans were built for.
	HighlightStamp() string
	SetHighlightStamp(stamp string)

	Clone() Buffer
}

// textBuffer implementation using runes for better unicode handling
type textBuffer struct {
	lines        [][]rune // Store lines as slices of runes
	spans        [][]Span // Styling per line, same length as lines
	defaultAttrs Attrs
	cursor       Cursor
	revision     uint64
	stamp        string
}

// NewBuffer creates a new empty buffer
func NewBuffer() Buffer {
	return &textBuffer{
		lines:  [][]rune{{}}, // Start with one empty line
		spans:  make([][]Span, 1),
		cursor: Cursor{Position: Position{0, 0}, Preferred: -1},
	}
}

// NewBufferFromString creates a buffer holding content.
func NewBufferFromString(content string) Buffer {
	b := NewBuffer()
	b.SetContent(content)
	return b
}

func (b *textBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// SetContent splits content on '\n'. A trailing newline yields a trailing empty
// line so GetCurrentContent round-trips exactly.
func (b *textBuffer) SetContent(content string) {
	parts := strings.Split(content, "\n")
	lines := make([][]rune, len(parts))
	for i, part := range parts {
		lines[i] = []rune(part)
	}

	b.lines = lines
	b.touch()
	b.SetCursor(b.cursor)
}

func (b *textBuffer) GetLines() []string {
	linesStr := make([]string, len(b.lines))
	for i, r := range b.lines {
		linesStr[i] = string(r)
	}
	return linesStr
}

func (b *textBuffer) GetLineRunes(lineNum int) []rune {
	if lineNum < 0 || lineNum >= len(b.lines) {
		return nil
	}
	return b.lines[lineNum]
}

func (b *textBuffer) LineRuneCount(lineNum int) int {
	if lineNum < 0 || lineNum >= len(b.lines) {
		return 0
	}
	return len(b.lines[lineNum])
}

// GetCurrentContent returns the entire buffer content as a string
func (b *textBuffer) GetCurrentContent() string {
	return strings.Join(b.GetLines(), "\n")
}

func (b *textBuffer) LineCount() int {
	return len(b.lines)
}

// TextRange returns the text between two positions, end exclusive. Positions
// are clamped and ordered first.
func (b *textBuffer) TextRange(start, end Position) string {
	start, end = NormalizeSelection(b.clamp(start), b.clamp(end))

	if start.Row == end.Row {
		return string(b.lines[start.Row][start.Col:end.Col])
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Row][start.Col:]))
	for r := start.Row + 1; r < end.Row; r++ {
		sb.WriteRune('\n')
		sb.WriteString(string(b.lines[r]))
	}
	sb.WriteRune('\n')
	sb.WriteString(string(b.lines[end.Row][:end.Col]))
	return sb.String()
}

func (b *textBuffer) GetCursor() Cursor {
	return b.cursor
}

// SetCursor sets the cursor position, validating and clamping it.
func (b *textBuffer) SetCursor(cursor Cursor) {
	cursor.Position = b.clamp(cursor.Position)
	b.cursor = cursor
}

func (b *textBuffer) clamp(pos Position) Position {
	if pos.Row < 0 {
		pos.Row = 0
	} else if pos.Row >= len(b.lines) {
		pos.Row = max(len(b.lines)-1, 0)
	}

	lineLen := b.LineRuneCount(pos.Row)
	if pos.Col < 0 {
		pos.Col = 0
	} else if pos.Col > lineLen {
		// Allow cursor to be one position *past* the end of the line
		pos.Col = lineLen
	}
	return pos
}

// --- Buffer Modification ---

// InsertRunesAt inserts runes at the specified position. Handles newlines correctly.
func (b *textBuffer) InsertRunesAt(row, col int, runes []rune) error {
	if row < 0 || row >= len(b.lines) {
		return fmt.Errorf("InsertRunesAt: %w: row %d out of bounds [0, %d)", ErrInvalidPosition, row, len(b.lines))
	}

	line := b.lines[row]
	if col < 0 || col > len(line) { // Allow insertion at len(line)
		return fmt.Errorf("InsertRunesAt: %w: col %d out of bounds [0, %d]", ErrInvalidPosition, col, len(line))
	}
	if len(runes) == 0 {
		return nil
	}

	if !slices.Contains(runes, '\n') {
		newLine := make([]rune, 0, len(line)+len(runes))
		newLine = append(newLine, line[:col]...)
		newLine = append(newLine, runes...)
		newLine = append(newLine, line[col:]...)
		b.lines[row] = newLine
		b.touch()
		return nil
	}

	parts := strings.Split(string(runes), "\n")

	head := slices.Clone(line[:col])
	tail := slices.Clone(line[col:])

	newLines := make([][]rune, len(parts))
	for i, part := range parts {
		newLines[i] = []rune(part)
	}
	newLines[0] = append(head, newLines[0]...)
	last := len(newLines) - 1
	newLines[last] = append(newLines[last], tail...)

	b.lines = slices.Concat(b.lines[:row], newLines, b.lines[row+1:])
	b.touch()
	return nil
}

// DeleteRunesAt deletes count runes starting at the specified position. A
// newline counts as one rune, so deletions can merge lines.
func (b *textBuffer) DeleteRunesAt(row, col int, count int) error {
	if count <= 0 {
		return nil
	}

	if row < 0 || row >= len(b.lines) {
		return newError(ErrInvalidPositionId,
			fmt.Errorf("%w: row %d out of bounds [0, %d)", ErrInvalidPosition, row, len(b.lines)))
	}

	line := b.lines[row]
	lineLen := len(line)
	if col < 0 || col > lineLen { // Allow deleting *from* len(line) if merging lines
		return newError(ErrInvalidPositionId,
			fmt.Errorf("%w: col %d out of bounds [0, %d]", ErrInvalidPosition, col, lineLen))
	}

	// Deletion entirely within the current line
	if col+count <= lineLen {
		newLine := make([]rune, 0, lineLen-count)
		newLine = append(newLine, line[:col]...)
		newLine = append(newLine, line[col+count:]...)
		b.lines[row] = newLine
		b.touch()
		return nil
	}

	if row == len(b.lines)-1 {
		return newError(ErrDeleteRunesId, fmt.Errorf("%w: %w", ErrDeleteRunes, ErrEndOfBuffer))
	}

	// Walk forward consuming the rest of this line, then one newline plus
	// content per following line, until count is exhausted.
	remaining := count - (lineLen - col)
	endRow, endCol := row, lineLen
	for remaining > 0 && endRow < len(b.lines)-1 {
		remaining-- // newline
		endRow++
		n := min(remaining, len(b.lines[endRow]))
		endCol = n
		remaining -= n
	}

	merged := append(slices.Clone(line[:col]), b.lines[endRow][endCol:]...)
	b.lines = slices.Concat(b.lines[:row], [][]rune{merged}, b.lines[endRow+1:])
	b.touch()
	return nil
}

func (b *textBuffer) DefaultAttrs() Attrs {
	return b.defaultAttrs
}

func (b *textBuffer) SetDefaultAttrs(attrs Attrs) {
	if b.defaultAttrs == attrs {
		return
	}
	b.defaultAttrs = attrs
	b.revision++
}

func (b *textBuffer) LineSpans(lineNum int) []Span {
	if lineNum < 0 || lineNum >= len(b.spans) {
		return nil
	}
	return b.spans[lineNum]
}

func (b *textBuffer) SetLineSpans(lineNum int, spans []Span) {
	if lineNum < 0 || lineNum >= len(b.spans) {
		return
	}
	b.spans[lineNum] = spans
	b.revision++
}

func (b *textBuffer) Revision() uint64 {
	return b.revision
}

func (b *textBuffer) HighlightStamp() string {
	return b.stamp
}

func (b *textBuffer) SetHighlightStamp(stamp string) {
	b.stamp = stamp
}

func (b *textBuffer) Clone() Buffer {
	lines := make([][]rune, len(b.lines))
	for i, l := range b.lines {
		lines[i] = slices.Clone(l)
	}
	spans := make([][]Span, len(b.spans))
	for i, s := range b.spans {
		spans[i] = slices.Clone(s)
	}

	return &textBuffer{
		lines:        lines,
		spans:        spans,
		defaultAttrs: b.defaultAttrs,
		cursor:       b.cursor,
		revision:     b.revision,
		stamp:        b.stamp,
	}
}

// touch records a text change: styling no longer lines up with the runes and
// is dropped until the next highlight pass.
func (b *textBuffer) touch() {
	b.spans = make([][]Span, len(b.lines))
	b.stamp = ""
	b.revision++
}
