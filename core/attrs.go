package core

// Family selects the font family a span is drawn with. Terminal hosts ignore it
// but it is kept so a buffer can be handed to other renderers unchanged.
type Family int

const (
	FamilySansSerif Family = iota
	FamilySerif
	FamilyMonospace
)

// Attrs is the styling applied to a run of text.
type Attrs struct {
	Family    Family
	Color     string // hex foreground, empty means the host default
	Bold      bool
	Italic    bool
	Underline bool
}

// Span styles the runes of one line in [Start, End).
type Span struct {
	Start int
	End   int
	Attrs Attrs
}

// attrsAt returns the attrs for col, falling back to def when no span covers it.
func attrsAt(spans []Span, col int, def Attrs) Attrs {
	for _, s := range spans {
		if col >= s.Start && col < s.End {
			return s.Attrs
		}
	}
	return def
}
