package core

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Position is a (row, rune column) location in the buffer.
type Position struct {
	Row int
	Col int
}

// Before reports whether p comes strictly before o.
func (p Position) Before(o Position) bool {
	return p.Row < o.Row || (p.Row == o.Row && p.Col < o.Col)
}

// NormalizeSelection orders two positions so that start <= end.
func NormalizeSelection(a, b Position) (start, end Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

// Cursor represents the current position for editing operations
type Cursor struct {
	Position  Position // Current position (row, column)
	Preferred int      // Preferred cell column for vertical movement, -1 when unset
}

// --- Cursor Movement ---

// clampCol ensures the column stays within the valid range for the given line
func (c *Cursor) clampCol(buffer Buffer) {
	lineLen := buffer.LineRuneCount(c.Position.Row)
	if c.Position.Col > lineLen {
		c.Position.Col = lineLen
	}
	if c.Position.Col < 0 {
		c.Position.Col = 0
	}
}

// MoveLeft moves one rune left, continuing at the end of the previous line.
func (c *Cursor) MoveLeft(buffer Buffer) error {
	c.Preferred = -1
	if c.Position.Col > 0 {
		c.Position.Col--
		return nil
	}
	if c.Position.Row <= 0 {
		return ErrStartOfBuffer
	}
	c.Position.Row--
	c.Position.Col = buffer.LineRuneCount(c.Position.Row)
	return nil
}

// MoveRight moves one rune right, continuing at the start of the next line.
func (c *Cursor) MoveRight(buffer Buffer) error {
	c.Preferred = -1
	if c.Position.Col < buffer.LineRuneCount(c.Position.Row) {
		c.Position.Col++
		return nil
	}
	if c.Position.Row >= buffer.LineCount()-1 {
		return ErrEndOfBuffer
	}
	c.Position.Row++
	c.Position.Col = 0
	return nil
}

// MoveToLineStart moves the cursor to the start of the current line (col 0)
func (c *Cursor) MoveToLineStart() {
	c.Position.Col = 0
	c.Preferred = -1
}

// MoveToLineEnd moves the cursor *after* the last character of the current line
func (c *Cursor) MoveToLineEnd(buffer Buffer) {
	c.Position.Col = buffer.LineRuneCount(c.Position.Row)
	c.Preferred = -1
}

// MoveToFirstNonBlank moves the cursor to the first non-whitespace character.
// When already there it goes to column 0 instead, so Home toggles.
func (c *Cursor) MoveToFirstNonBlank(buffer Buffer) {
	line := buffer.GetLineRunes(c.Position.Row)
	firstNonBlank := 0
	for i, r := range line {
		if !unicode.IsSpace(r) {
			firstNonBlank = i
			break
		}
	}

	if c.Position.Col == firstNonBlank {
		firstNonBlank = 0
	}
	c.Position.Col = firstNonBlank
	c.Preferred = -1
}

// MoveToBufferStart moves the cursor to the start of the buffer
func (c *Cursor) MoveToBufferStart() {
	c.Position.Row = 0
	c.Position.Col = 0
	c.Preferred = -1
}

// MoveToBufferEnd moves the cursor after the last character of the last line
func (c *Cursor) MoveToBufferEnd(buffer Buffer) {
	c.Position.Row = max(buffer.LineCount()-1, 0)
	c.Position.Col = buffer.LineRuneCount(c.Position.Row)
	c.Preferred = -1
}

// --- Word Movement (Using Unicode and Runes) ---
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func isWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// MoveWordForward moves the cursor to the start of the next word, crossing
// line ends.
func (c *Cursor) MoveWordForward(buffer Buffer) error {
	c.Preferred = -1
	lineRunes := buffer.GetLineRunes(c.Position.Row)
	lineLen := len(lineRunes)

	// If at end of line, move to next line's first non-blank
	if c.Position.Col >= lineLen {
		if c.Position.Row >= buffer.LineCount()-1 {
			return ErrEndOfBuffer
		}
		c.Position.Row++
		c.Position.Col = 0
		for startCol, r := range buffer.GetLineRunes(c.Position.Row) {
			if !isWhiteSpace(r) {
				c.Position.Col = startCol
				break
			}
		}
		return nil
	}

	pos := c.Position.Col
	switch current := lineRunes[pos]; {
	case isWordChar(current):
		for pos < lineLen && isWordChar(lineRunes[pos]) {
			pos++
		}
	case isWhiteSpace(current):
	default:
		for pos < lineLen && !isWordChar(lineRunes[pos]) && !isWhiteSpace(lineRunes[pos]) {
			pos++
		}
	}
	for pos < lineLen && isWhiteSpace(lineRunes[pos]) {
		pos++
	}

	// Running off the end parks the cursor at the line end; the next call crosses it.
	c.Position.Col = pos
	return nil
}

// MoveWordBackward moves the cursor to the start of the previous word,
// crossing line starts.
func (c *Cursor) MoveWordBackward(buffer Buffer) error {
	c.Preferred = -1
	if c.Position.Col <= 0 {
		if c.Position.Row <= 0 {
			return ErrStartOfBuffer
		}
		c.Position.Row--
		c.Position.Col = buffer.LineRuneCount(c.Position.Row)
		return nil
	}

	lineRunes := buffer.GetLineRunes(c.Position.Row)
	pos := c.Position.Col - 1

	// Skip back over whitespace
	for pos >= 0 && isWhiteSpace(lineRunes[pos]) {
		pos--
	}
	if pos < 0 {
		c.Position.Col = 0
		return nil
	}

	if isWordChar(lineRunes[pos]) {
		for pos >= 0 && isWordChar(lineRunes[pos]) {
			pos--
		}
	} else {
		for pos >= 0 && !isWordChar(lineRunes[pos]) && !isWhiteSpace(lineRunes[pos]) {
			pos--
		}
	}

	c.Position.Col = pos + 1
	return nil
}

// WordBounds returns the rune range of the word segment containing col, using
// Unicode word boundaries. A column at the end of the line selects the last
// segment.
func WordBounds(line []rune, col int) (start, end int) {
	if len(line) == 0 {
		return 0, 0
	}
	col = min(max(col, 0), len(line)-1)

	rest := string(line)
	state := -1
	offset := 0
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := len([]rune(word))
		if col < offset+n {
			return offset, offset + n
		}
		offset += n
	}
	return offset, offset
}
