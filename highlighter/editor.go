package highlighter

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/internal/log"
)

// SyntaxEditor styles the buffer of a core.Editor with one theme and grammar.
// It keeps no state between frames beyond what it stores on the buffer, so
// it can be created fresh every time.
type SyntaxEditor struct {
	editor    *core.Editor
	themeName string
	theme     *chroma.Style
	system    *SyntaxSystem
	lexer     chroma.Lexer
}

// New wraps editor with the named theme and the plain text grammar. It
// returns nil when the theme is unknown.
func New(editor *core.Editor, system *SyntaxSystem, theme string) *SyntaxEditor {
	style, ok := system.Theme(theme)
	if !ok {
		log.Debug(log.CatHighlight, "unknown theme", "theme", theme)
		return nil
	}

	return &SyntaxEditor{
		editor:    editor,
		themeName: theme,
		theme:     style,
		system:    system,
		lexer:     chroma.Coalesce(lexers.Fallback),
	}
}

// SyntaxByExtension switches the grammar to the one for ext.
func (s *SyntaxEditor) SyntaxByExtension(ext string) {
	s.lexer = s.system.LexerForExtension(ext)
}

// SyntaxByName switches the grammar by language name, leaving it unchanged
// when the name is unknown.
func (s *SyntaxEditor) SyntaxByName(name string) bool {
	lexer, ok := s.system.Lexer(name)
	if ok {
		s.lexer = lexer
	}
	return ok
}

func (s *SyntaxEditor) Editor() *core.Editor {
	return s.editor
}

// LanguageName returns the active grammar's name.
func (s *SyntaxEditor) LanguageName() string {
	return s.lexer.Config().Name
}

// Background returns the theme's background colour as hex, if it has one.
func (s *SyntaxEditor) Background() (string, bool) {
	entry := s.theme.Get(chroma.Background)
	if !entry.Background.IsSet() {
		return "", false
	}
	return entry.Background.String(), true
}

// ShapeAsNeeded highlights the buffer when its text, the theme or the grammar
// changed since the last pass, then lets the editor relayout.
func (s *SyntaxEditor) ShapeAsNeeded() {
	buf := s.editor.Buffer()
	if stamp := s.stamp(); buf.HighlightStamp() != stamp {
		s.highlight(buf)
		buf.SetHighlightStamp(stamp)
	}
	s.editor.ShapeAsNeeded()
}

func (s *SyntaxEditor) stamp() string {
	return s.themeName + "\x00" + s.LanguageName()
}

// highlight tokenizes the whole content, since grammars such as markdown or
// block comments carry state across lines, and stores per-line spans.
func (s *SyntaxEditor) highlight(buf core.Buffer) {
	lines := buf.GetLines()
	content := strings.Join(lines, "\n")
	family := buf.DefaultAttrs().Family
	base := s.attrsFor(chroma.Text, family)

	iterator, err := s.lexer.Tokenise(nil, content)
	if err != nil {
		log.Debug(log.CatHighlight, "tokenise failed", "lexer", s.LanguageName(), "error", err)
		for row := range lines {
			buf.SetLineSpans(row, nil)
		}
		return
	}

	row, col := 0, 0
	var spans []core.Span
	flush := func() {
		buf.SetLineSpans(row, spans)
		spans = nil
	}

	for _, token := range iterator.Tokens() {
		attrs := s.attrsFor(token.Type, family)
		if attrs.Color == "" {
			attrs.Color = base.Color
		}

		value := token.Value
		for {
			before, after, found := strings.Cut(value, "\n")
			if n := utf8.RuneCountInString(before); n > 0 {
				spans = append(spans, core.Span{Start: col, End: col + n, Attrs: attrs})
				col += n
			}
			if !found {
				break
			}
			flush()
			row++
			col = 0
			value = after
		}
	}
	flush()
}

// attrsFor converts a theme entry into text attributes.
func (s *SyntaxEditor) attrsFor(t chroma.TokenType, family core.Family) core.Attrs {
	entry := s.theme.Get(t)
	attrs := core.Attrs{
		Family:    family,
		Bold:      entry.Bold == chroma.Yes,
		Italic:    entry.Italic == chroma.Yes,
		Underline: entry.Underline == chroma.Yes,
	}
	if entry.Colour.IsSet() {
		attrs.Color = entry.Colour.String()
	}
	return attrs
}
