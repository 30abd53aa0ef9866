package highlighter

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/synedit/core"
)

func TestSyntaxSystem_Themes(t *testing.T) {
	system := NewSyntaxSystem()

	_, ok := system.Theme(Eighties)
	require.True(t, ok)

	_, ok = system.Theme("MONOKAI")
	require.True(t, ok, "lookup ignores case")

	_, ok = system.Theme("no-such-theme")
	require.False(t, ok)

	require.Contains(t, system.ThemeNames(), Eighties)
}

func TestSyntaxSystem_RegisterTheme(t *testing.T) {
	system := NewSyntaxSystem()
	style := chroma.MustNewStyle("custom", chroma.StyleEntries{chroma.Keyword: "bold #ff0000"})

	system.RegisterTheme(style)

	got, ok := system.Theme("custom")
	require.True(t, ok)
	require.Same(t, style, got)
}

func TestSyntaxSystem_LexerForExtension(t *testing.T) {
	system := NewSyntaxSystem()

	tests := []struct {
		ext  string
		want string
	}{
		{ext: "rs", want: "Rust"},
		{ext: ".go", want: "Go"},
		{ext: "no-such-extension", want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			require.Equal(t, tt.want, system.LexerForExtension(tt.ext).Config().Name)
		})
	}
}

func TestSyntaxSystem_Lexer(t *testing.T) {
	system := NewSyntaxSystem()

	lexer, ok := system.Lexer("rust")
	require.True(t, ok)
	require.Equal(t, "Rust", lexer.Config().Name)

	_, ok = system.Lexer("no-such-language")
	require.False(t, ok)
}

func TestNew_UnknownThemeReturnsNil(t *testing.T) {
	require.Nil(t, New(core.New(), NewSyntaxSystem(), "no-such-theme"))
}

func TestSyntaxEditor_HighlightsBuffer(t *testing.T) {
	ed := core.New(core.WithText("fn main() {\n    // hi\n}"))
	s := New(ed, NewSyntaxSystem(), Eighties)
	require.NotNil(t, s)
	s.SyntaxByExtension("rs")
	require.Equal(t, "Rust", s.LanguageName())

	s.ShapeAsNeeded()

	buf := ed.Buffer()
	spans := buf.LineSpans(0)
	require.NotEmpty(t, spans)
	require.Equal(t, 0, spans[0].Start)
	require.Equal(t, 2, spans[0].End)
	require.Equal(t, "#cc99cc", spans[0].Attrs.Color, "keyword colour")

	comment := buf.LineSpans(1)
	require.NotEmpty(t, comment)
	last := comment[len(comment)-1]
	require.Equal(t, 9, last.End)
	require.True(t, last.Attrs.Italic)
	require.Equal(t, "#747369", last.Attrs.Color)

	for _, run := range ed.LayoutRuns() {
		for _, g := range run.Glyphs {
			require.NotEmpty(t, g.Attrs.Color, "every glyph has a colour")
		}
	}
}

func TestSyntaxEditor_SkipsUnchangedBuffer(t *testing.T) {
	ed := core.New(core.WithText("let x = 1;"))
	s := New(ed, NewSyntaxSystem(), Eighties)
	s.SyntaxByExtension("rs")
	s.ShapeAsNeeded()

	buf := ed.Buffer()
	require.Equal(t, Eighties+"\x00Rust", buf.HighlightStamp())

	marker := []core.Span{{Start: 0, End: 1, Attrs: core.Attrs{Color: "#000000"}}}
	buf.SetLineSpans(0, marker)
	s.ShapeAsNeeded()
	require.Equal(t, marker, buf.LineSpans(0), "same text, theme and grammar")

	require.NoError(t, ed.Apply(core.InsertAction{Rune: 'x'}))
	s.ShapeAsNeeded()
	require.NotEqual(t, marker, buf.LineSpans(0), "edits trigger a new pass")
}

func TestSyntaxEditor_SwitchingGrammarRehighlights(t *testing.T) {
	ed := core.New(core.WithText("fn main() {}"))
	s := New(ed, NewSyntaxSystem(), Eighties)
	s.ShapeAsNeeded()
	require.Equal(t, Eighties+"\x00fallback", ed.Buffer().HighlightStamp())

	require.True(t, s.SyntaxByName("rust"))
	require.False(t, s.SyntaxByName("no-such-language"))
	s.ShapeAsNeeded()
	require.Equal(t, "#cc99cc", ed.Buffer().LineSpans(0)[0].Attrs.Color)
}

func TestSyntaxEditor_Background(t *testing.T) {
	s := New(core.New(), NewSyntaxSystem(), Eighties)

	bg, ok := s.Background()
	require.True(t, ok)
	require.Equal(t, "#2d2d2d", bg)
}
