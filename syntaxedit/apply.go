package syntaxedit

import (
	"fmt"

	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/internal/log"
)

// OnChange receives the content an action would produce and returns the
// content the editor should hold instead.
type OnChange func(content string) string

// discardChanges is the OnChange used when none is configured. It empties
// the buffer on every action, so an editor without a callback cannot be
// edited.
func discardChanges(string) string {
	return ""
}

// handleAction applies a in two phases. The action first runs on a copy so
// onChange sees the exact resulting content, then on the real editor, whose
// text is finally replaced with what onChange returned. Callers hold the
// state's write lock.
func handleAction(ed *core.Editor, a core.Action, onChange OnChange) {
	if onChange == nil {
		onChange = discardChanges
	}

	preview := ed.Clone()
	if err := preview.Apply(a); err != nil && !core.IsBoundary(err) {
		log.ErrorErr(log.CatEditor, "apply action to preview failed", err, "action", actionName(a))
	}
	content := preview.Text()

	if err := ed.Apply(a); err != nil && !core.IsBoundary(err) {
		log.ErrorErr(log.CatEditor, "apply action failed", err, "action", actionName(a))
	}

	final := onChange(content)
	if final != content {
		log.Debug(log.CatEditor, "content rewritten by callback", "action", actionName(a),
			"before", len(content), "after", len(final))
	}
	ed.SetTextReactive(final, core.Attrs{Family: core.FamilySansSerif})
}

func actionName(a core.Action) string {
	if m, ok := a.(core.MotionAction); ok {
		return "motion:" + m.Motion.String()
	}
	return fmt.Sprintf("%T", a)
}
