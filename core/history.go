package core

import "slices"

const defaultMaxHistory = 1000

// history keeps whole-buffer snapshots. Simple, and cheap enough for the
// buffer sizes a widget edits.
type history struct {
	entries []string // Store snapshots of buffer content as strings
	cursors []Cursor // Store cursor states corresponding to history
	pos     int      // Current position in the history (-1 = nothing saved)
	max     int
}

func newHistory(max int) *history {
	return &history{pos: -1, max: max}
}

func (h *history) save(b Buffer) {
	content := b.GetCurrentContent()
	cursor := b.GetCursor()

	// If we used Undo, truncate the future history
	if h.pos < len(h.entries)-1 {
		h.entries = h.entries[:h.pos+1]
		h.cursors = h.cursors[:h.pos+1]
	}

	// Avoid saving duplicate state, but remember where the cursor went
	if h.pos >= 0 && h.entries[h.pos] == content {
		h.cursors[h.pos] = cursor
		return
	}

	h.entries = append(h.entries, content)
	h.cursors = append(h.cursors, cursor)
	h.pos = len(h.entries) - 1

	if h.max > 0 && len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
		h.cursors = h.cursors[len(h.cursors)-h.max:]
		h.pos = len(h.entries) - 1
	}
}

// amend replaces the current snapshot, used when text is rewritten after an
// edit was already recorded.
func (h *history) amend(b Buffer) {
	if h.pos < 0 {
		h.save(b)
		return
	}
	h.entries[h.pos] = b.GetCurrentContent()
	h.cursors[h.pos] = b.GetCursor()
}

func (h *history) reset(b Buffer) {
	h.entries = nil
	h.cursors = nil
	h.pos = -1
	h.save(b)
}

func (h *history) undo(b Buffer) error {
	if h.pos <= 0 {
		return ErrUndoFailed
	}
	h.pos--
	b.SetContent(h.entries[h.pos])
	b.SetCursor(h.cursors[h.pos])
	return nil
}

func (h *history) redo(b Buffer) error {
	if h.pos >= len(h.entries)-1 {
		return ErrRedoFailed
	}
	h.pos++
	b.SetContent(h.entries[h.pos])
	b.SetCursor(h.cursors[h.pos])
	return nil
}

func (h *history) clone() *history {
	return &history{
		entries: slices.Clone(h.entries),
		cursors: slices.Clone(h.cursors),
		pos:     h.pos,
		max:     h.max,
	}
}
