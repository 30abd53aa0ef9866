package syntaxedit

import (
	"sync"

	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/highlighter"
)

// Highlighter prepares the buffer's styling right before it is laid out.
// Prepare runs once per measure pass and must leave the buffer usable even
// when it cannot highlight.
type Highlighter interface {
	Prepare()
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func()

func (f HighlighterFunc) Prepare() {
	f()
}

// NewSyntaxHighlighter highlights the state's buffer with theme, choosing the
// grammar from ext when it is not empty. An unknown theme leaves the text
// unstyled.
func NewSyntaxHighlighter(state *EditorState, system *highlighter.SyntaxSystem, theme, ext string) Highlighter {
	return HighlighterFunc(func() {
		state.withEditor(func(ed *core.Editor) {
			se := highlighter.New(ed, system, theme)
			if se == nil {
				return
			}
			if ext != "" {
				se.SyntaxByExtension(ext)
			}
			se.ShapeAsNeeded()
		})
	})
}

var (
	defaultSystemOnce sync.Once
	defaultSystem     *highlighter.SyntaxSystem
)

// DefaultSyntaxSystem returns the process-wide syntax system, loading it on
// first use.
func DefaultSyntaxSystem() *highlighter.SyntaxSystem {
	defaultSystemOnce.Do(func() {
		defaultSystem = highlighter.NewSyntaxSystem()
	})
	return defaultSystem
}
