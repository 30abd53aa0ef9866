package highlighter

import (
	"sort"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Eighties is the name of the bundled base16 "eighties" dark theme.
const Eighties = "base16-eighties.dark"

// eightiesEntries maps token types to the base16 eighties palette:
// 00 #2d2d2d, 03 #747369, 05 #d3d0c8, 08 #f2777a, 09 #f99157, 0A #ffcc66,
// 0B #99cc99, 0C #66cccc, 0D #6699cc, 0E #cc99cc, 0F #d27b53.
var eightiesEntries = chroma.StyleEntries{
	chroma.Background:          "#d3d0c8 bg:#2d2d2d",
	chroma.Text:                "#d3d0c8",
	chroma.Error:               "#f2777a",
	chroma.Comment:             "italic #747369",
	chroma.CommentPreproc:      "#d27b53",
	chroma.Keyword:             "#cc99cc",
	chroma.KeywordType:         "#ffcc66",
	chroma.KeywordConstant:     "#f99157",
	chroma.Name:                "#d3d0c8",
	chroma.NameAttribute:       "#6699cc",
	chroma.NameBuiltin:         "#f2777a",
	chroma.NameClass:           "#ffcc66",
	chroma.NameConstant:        "#f99157",
	chroma.NameDecorator:       "#d27b53",
	chroma.NameFunction:        "#6699cc",
	chroma.NameNamespace:       "#ffcc66",
	chroma.NameTag:             "#f2777a",
	chroma.NameVariable:        "#f2777a",
	chroma.Literal:             "#f99157",
	chroma.LiteralNumber:       "#f99157",
	chroma.LiteralString:       "#99cc99",
	chroma.LiteralStringEscape: "#66cccc",
	chroma.LiteralStringRegex:  "#66cccc",
	chroma.LiteralStringChar:   "#99cc99",
	chroma.Operator:            "#66cccc",
	chroma.Punctuation:         "#d3d0c8",
	chroma.GenericDeleted:      "#f2777a",
	chroma.GenericInserted:     "#99cc99",
	chroma.GenericHeading:      "bold #6699cc",
	chroma.GenericSubheading:   "bold #66cccc",
	chroma.GenericEmph:         "italic",
	chroma.GenericStrong:       "bold",
}

// SyntaxSystem is the registry of themes and grammars the editors of one
// application share. It is safe for concurrent use.
type SyntaxSystem struct {
	mu     sync.RWMutex
	themes map[string]*chroma.Style
}

// NewSyntaxSystem loads every chroma style plus the bundled eighties theme.
func NewSyntaxSystem() *SyntaxSystem {
	s := &SyntaxSystem{themes: make(map[string]*chroma.Style)}
	for _, name := range styles.Names() {
		s.themes[name] = styles.Get(name)
	}
	s.themes[Eighties] = chroma.MustNewStyle(Eighties, eightiesEntries)
	return s
}

// RegisterTheme adds or replaces a theme.
func (s *SyntaxSystem) RegisterTheme(style *chroma.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[style.Name] = style
}

// Theme looks a theme up by exact name, then case-insensitively. Unlike
// styles.Get there is no fallback, so callers can tell unknown names apart.
func (s *SyntaxSystem) Theme(name string) (*chroma.Style, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if style, ok := s.themes[name]; ok {
		return style, true
	}
	for n, style := range s.themes {
		if strings.EqualFold(n, name) {
			return style, true
		}
	}
	return nil, false
}

// ThemeNames lists the registered themes in order.
func (s *SyntaxSystem) ThemeNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.themes))
	for n := range s.themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lexer returns the grammar registered under name or alias.
func (s *SyntaxSystem) Lexer(name string) (chroma.Lexer, bool) {
	lexer := lexers.Get(name)
	if lexer == nil {
		return nil, false
	}
	return chroma.Coalesce(lexer), true
}

// LexerForExtension picks a grammar for a file extension such as "rs" or
// ".go", falling back to plain text.
func (s *SyntaxSystem) LexerForExtension(ext string) chroma.Lexer {
	ext = strings.TrimPrefix(ext, ".")

	lexer := lexers.Match("file." + ext)
	if lexer == nil {
		lexer = lexers.Get(ext)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
