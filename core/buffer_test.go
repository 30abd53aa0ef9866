package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBuffer_SetContentRoundTrips(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   int
	}{
		{name: "empty", content: "", lines: 1},
		{name: "single line", content: "hello", lines: 1},
		{name: "trailing newline", content: "a\nb\n", lines: 3},
		{name: "blank lines", content: "\n\n", lines: 3},
		{name: "unicode", content: "héllo\n世界", lines: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.content)
			require.Equal(t, tt.lines, b.LineCount())
			require.Equal(t, tt.content, b.GetCurrentContent())
		})
	}
}

func TestBuffer_InsertRunesAtSplitsLines(t *testing.T) {
	b := NewBufferFromString("hello world")

	require.NoError(t, b.InsertRunesAt(0, 5, []rune("\nX")))
	require.Equal(t, []string{"hello", "X world"}, b.GetLines())
}

func TestBuffer_InsertRunesAtRejectsBadPosition(t *testing.T) {
	b := NewBufferFromString("abc")

	err := b.InsertRunesAt(1, 0, []rune("x"))
	require.ErrorIs(t, err, ErrInvalidPosition)

	err = b.InsertRunesAt(0, 4, []rune("x"))
	require.ErrorIs(t, err, ErrInvalidPosition)
	require.Equal(t, "abc", b.GetCurrentContent())
}

func TestBuffer_DeleteRunesAtMergesLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		row, col int
		count    int
		want     string
	}{
		{name: "within line", content: "abcd", row: 0, col: 1, count: 2, want: "ad"},
		{name: "newline only", content: "ab\ncd", row: 0, col: 2, count: 1, want: "abcd"},
		{name: "across newline", content: "ab\ncd", row: 0, col: 1, count: 3, want: "ad"},
		{name: "several lines", content: "a\nb\nc\nd", row: 0, col: 1, count: 4, want: "a\nd"},
		{name: "zero count", content: "ab", row: 0, col: 0, count: 0, want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.content)
			require.NoError(t, b.DeleteRunesAt(tt.row, tt.col, tt.count))
			require.Equal(t, tt.want, b.GetCurrentContent())
		})
	}
}

func TestBuffer_DeleteRunesPastEnd(t *testing.T) {
	b := NewBufferFromString("ab")

	err := b.DeleteRunesAt(0, 1, 5)
	require.ErrorIs(t, err, ErrEndOfBuffer)
	require.True(t, IsBoundary(err))

	var editorErr *Error
	require.True(t, errors.As(err, &editorErr))
	require.Equal(t, ErrDeleteRunesId, editorErr.ID())
	require.Equal(t, "ab", b.GetCurrentContent())
}

func TestBuffer_TextRange(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")

	require.Equal(t, "ne\ntwo\nth", b.TextRange(Position{0, 1}, Position{2, 2}))
	require.Equal(t, "ne\ntwo\nth", b.TextRange(Position{2, 2}, Position{0, 1}), "positions are ordered")
	require.Equal(t, "tw", b.TextRange(Position{1, 0}, Position{1, 2}))
	require.Equal(t, "three", b.TextRange(Position{2, 0}, Position{9, 99}), "positions are clamped")
}

func TestBuffer_EditsDropHighlighting(t *testing.T) {
	b := NewBufferFromString("let x")
	b.SetLineSpans(0, []Span{{Start: 0, End: 3, Attrs: Attrs{Bold: true}}})
	b.SetHighlightStamp("theme\x00Rust")
	rev := b.Revision()

	require.NoError(t, b.InsertRunesAt(0, 5, []rune(" = 1")))

	require.Nil(t, b.LineSpans(0))
	require.Empty(t, b.HighlightStamp())
	require.Greater(t, b.Revision(), rev)
}

func TestBuffer_SetDefaultAttrsBumpsRevisionOnChange(t *testing.T) {
	b := NewBuffer()
	rev := b.Revision()

	b.SetDefaultAttrs(Attrs{})
	require.Equal(t, rev, b.Revision(), "same attrs")

	b.SetDefaultAttrs(Attrs{Color: "#ffffff"})
	require.Greater(t, b.Revision(), rev)
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	b := NewBufferFromString("abc")
	b.SetLineSpans(0, []Span{{Start: 0, End: 1}})

	c := b.Clone()
	require.NoError(t, c.InsertRunesAt(0, 0, []rune("x")))

	require.Equal(t, "abc", b.GetCurrentContent())
	require.Len(t, b.LineSpans(0), 1)
	require.Equal(t, "xabc", c.GetCurrentContent())
}

func TestBuffer_SetCursorClamps(t *testing.T) {
	b := NewBufferFromString("ab\ncdef")

	b.SetCursor(Cursor{Position: Position{Row: 5, Col: 10}})
	require.Equal(t, Position{Row: 1, Col: 4}, b.GetCursor().Position)

	b.SetCursor(Cursor{Position: Position{Row: -1, Col: -1}})
	require.Equal(t, Position{}, b.GetCursor().Position)
}

// offsetOf converts a rune offset in content to a buffer position.
func offsetOf(content []rune, offset int) Position {
	pos := Position{}
	for _, r := range content[:offset] {
		if r == '\n' {
			pos.Row++
			pos.Col = 0
		} else {
			pos.Col++
		}
	}
	return pos
}

func TestBuffer_InsertThenDeleteRestores(t *testing.T) {
	text := rapid.StringMatching(`[a-z \n]{0,20}`)

	rapid.Check(t, func(t *rapid.T) {
		content := []rune(text.Draw(t, "content"))
		insert := []rune(text.Draw(t, "insert"))
		offset := rapid.IntRange(0, len(content)).Draw(t, "offset")

		b := NewBufferFromString(string(content))
		pos := offsetOf(content, offset)

		if err := b.InsertRunesAt(pos.Row, pos.Col, insert); err != nil {
			t.Fatalf("insert: %v", err)
		}
		want := string(content[:offset]) + string(insert) + string(content[offset:])
		if got := b.GetCurrentContent(); got != want {
			t.Fatalf("after insert got %q, want %q", got, want)
		}

		if err := b.DeleteRunesAt(pos.Row, pos.Col, len(insert)); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if got := b.GetCurrentContent(); got != string(content) {
			t.Fatalf("after delete got %q, want %q", got, string(content))
		}
		if strings.Count(b.GetCurrentContent(), "\n")+1 != b.LineCount() {
			t.Fatalf("line count %d does not match content", b.LineCount())
		}
	})
}
