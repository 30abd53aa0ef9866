// Package syntaxedit is a syntax highlighted text editor component for the
// ui toolkit.
//
// The application keeps an EditorState per editor and calls SyntaxEditor
// every frame:
//
//	state := syntaxedit.NewEditorState(22)
//	...
//	syntaxedit.SyntaxEditor(s, syntaxedit.DefaultArgs().
//		WithFileExtension("rs").
//		WithOnChange(func(text string) string { return text }), state)
package syntaxedit

import (
	"github.com/ionut-t/synedit/highlighter"
	"github.com/ionut-t/synedit/ui"
)

// SyntaxEditor declares an editor using the process-wide syntax system.
func SyntaxEditor(s *ui.Scope, args SyntaxEditorArgs, state *EditorState) {
	SyntaxEditorWith(s, args, state, DefaultSyntaxSystem())
}

// SyntaxEditorWith declares an editor highlighting with system.
func SyntaxEditorWith(s *ui.Scope, args SyntaxEditorArgs, state *EditorState, system *highlighter.SyntaxSystem) {
	if args.SelectionColor != nil {
		state.SetSelectionColor(*args.SelectionColor)
	}

	hook := NewSyntaxHighlighter(state, system, args.ThemeName, args.FileExtension)

	s.Node("syntax_editor", func(s *ui.Scope) {
		ui.Surface(s, args.surfaceArgs(state.IsFocused()), func(s *ui.Scope) {
			editCore(s, state, hook)
		})
		s.Input(newDispatcher(args, state, DefaultKeyMap()).handle)
	})
}
