package syntaxedit

import (
	"fmt"

	"github.com/ionut-t/synedit/highlighter"
	"github.com/ionut-t/synedit/ui"
)

// DefaultThemeName is the theme used when none is configured.
const DefaultThemeName = highlighter.Eighties

var (
	defaultFocusBackground = ui.WHITE
	defaultBackground      = ui.RGBA(0.95, 0.95, 0.95, 1.0)
	defaultFocusBorder     = ui.RGBA(0.0, 0.5, 1.0, 1.0)
	defaultBorder          = ui.RGBA(0.7, 0.7, 0.7, 1.0)
)

// SyntaxEditorArgs configures one SyntaxEditor call. Optional colours and
// sizes are nil when unset.
type SyntaxEditorArgs struct {
	Width     ui.DimensionValue
	Height    ui.DimensionValue
	MinWidth  *ui.Dp
	MinHeight *ui.Dp

	BackgroundColor      *ui.Color
	FocusBackgroundColor *ui.Color
	BorderWidth          ui.Dp
	BorderColor          *ui.Color
	FocusBorderColor     *ui.Color
	Shape                ui.Shape
	Padding              ui.Dp

	// SelectionColor overrides the state's selection colour.
	SelectionColor *ui.Color
	ThemeName      string
	// FileExtension selects the grammar, e.g. "rs". Empty means plain text.
	FileExtension string
	// OnChange sees the content every action would produce and returns the
	// content to keep. Without it every action empties the buffer.
	OnChange OnChange
}

// DefaultArgs returns the documented defaults. Its OnChange discards all
// edits; set one to get a working editor.
func DefaultArgs() SyntaxEditorArgs {
	selection := DefaultSelectionColor
	return SyntaxEditorArgs{
		Width:          ui.Wrap(),
		Height:         ui.Wrap(),
		BorderWidth:    1,
		Shape:          ui.RoundedRectangle(4, 3.0),
		Padding:        5,
		SelectionColor: &selection,
		ThemeName:      DefaultThemeName,
		OnChange:       discardChanges,
	}
}

func ptr[T any](v T) *T {
	return &v
}

// Simple is a white editor with a thin gray border and square corners.
func Simple() SyntaxEditorArgs {
	args := DefaultArgs()
	args.MinWidth = ptr[ui.Dp](120)
	args.BackgroundColor = ptr(ui.WHITE)
	args.BorderWidth = 1
	args.BorderColor = ptr(defaultBorder)
	args.Shape = ui.RoundedRectangle(0, 3.0)
	return args
}

// Outlined is Simple with a blue border while focused.
func Outlined() SyntaxEditorArgs {
	return Simple().
		WithBorderWidth(1).
		WithFocusBorderColor(defaultFocusBorder)
}

// Minimal is Simple without a border.
func Minimal() SyntaxEditorArgs {
	args := DefaultArgs()
	args.MinWidth = ptr[ui.Dp](120)
	args.BackgroundColor = ptr(ui.WHITE)
	args.BorderWidth = 0
	args.Shape = ui.RoundedRectangle(0, 3.0)
	return args
}

func (a SyntaxEditorArgs) WithWidth(d ui.DimensionValue) SyntaxEditorArgs {
	a.Width = d
	return a
}

func (a SyntaxEditorArgs) WithHeight(d ui.DimensionValue) SyntaxEditorArgs {
	a.Height = d
	return a
}

func (a SyntaxEditorArgs) WithMinWidth(v ui.Dp) SyntaxEditorArgs {
	a.MinWidth = &v
	return a
}

func (a SyntaxEditorArgs) WithMinHeight(v ui.Dp) SyntaxEditorArgs {
	a.MinHeight = &v
	return a
}

func (a SyntaxEditorArgs) WithBackgroundColor(c ui.Color) SyntaxEditorArgs {
	a.BackgroundColor = &c
	return a
}

func (a SyntaxEditorArgs) WithFocusBackgroundColor(c ui.Color) SyntaxEditorArgs {
	a.FocusBackgroundColor = &c
	return a
}

func (a SyntaxEditorArgs) WithBorderWidth(v ui.Dp) SyntaxEditorArgs {
	a.BorderWidth = v
	return a
}

func (a SyntaxEditorArgs) WithBorderColor(c ui.Color) SyntaxEditorArgs {
	a.BorderColor = &c
	return a
}

func (a SyntaxEditorArgs) WithFocusBorderColor(c ui.Color) SyntaxEditorArgs {
	a.FocusBorderColor = &c
	return a
}

func (a SyntaxEditorArgs) WithShape(s ui.Shape) SyntaxEditorArgs {
	a.Shape = s
	return a
}

func (a SyntaxEditorArgs) WithPadding(v ui.Dp) SyntaxEditorArgs {
	a.Padding = v
	return a
}

func (a SyntaxEditorArgs) WithSelectionColor(c ui.Color) SyntaxEditorArgs {
	a.SelectionColor = &c
	return a
}

func (a SyntaxEditorArgs) WithThemeName(name string) SyntaxEditorArgs {
	a.ThemeName = name
	return a
}

func (a SyntaxEditorArgs) WithFileExtension(ext string) SyntaxEditorArgs {
	a.FileExtension = ext
	return a
}

func (a SyntaxEditorArgs) WithOnChange(fn OnChange) SyntaxEditorArgs {
	a.OnChange = fn
	return a
}

// Validate checks the arguments for inconsistencies.
func (a SyntaxEditorArgs) Validate() error {
	if a.OnChange == nil {
		return ErrMissingOnChange
	}
	if a.BorderWidth < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeBorder, a.BorderWidth)
	}
	if a.Padding < 0 {
		return fmt.Errorf("%w: %v", ErrNegativePadding, a.Padding)
	}
	if a.ThemeName == "" {
		return ErrEmptyThemeName
	}
	if err := checkMin("width", a.Width, a.MinWidth); err != nil {
		return err
	}
	return checkMin("height", a.Height, a.MinHeight)
}

func checkMin(axis string, d ui.DimensionValue, minSize *ui.Dp) error {
	if minSize == nil || d.Kind != ui.DimensionFixed {
		return nil
	}
	if m := minSize.ToPx(); m > d.Value {
		return fmt.Errorf("%w: min %s %d > %d", ErrMinAboveFixedSize, axis, m, d.Value)
	}
	return nil
}

// backgroundColor picks the fill for the focus state: focused falls back
// from the focus colour to the plain one to white, unfocused from the plain
// one to light gray.
func (a SyntaxEditorArgs) backgroundColor(focused bool) ui.Color {
	if focused {
		switch {
		case a.FocusBackgroundColor != nil:
			return *a.FocusBackgroundColor
		case a.BackgroundColor != nil:
			return *a.BackgroundColor
		}
		return defaultFocusBackground
	}
	if a.BackgroundColor != nil {
		return *a.BackgroundColor
	}
	return defaultBackground
}

func (a SyntaxEditorArgs) borderColor(focused bool) ui.Color {
	if focused {
		switch {
		case a.FocusBorderColor != nil:
			return *a.FocusBorderColor
		case a.BorderColor != nil:
			return *a.BorderColor
		}
		return defaultFocusBorder
	}
	if a.BorderColor != nil {
		return *a.BorderColor
	}
	return defaultBorder
}

func (a SyntaxEditorArgs) surfaceArgs(focused bool) ui.SurfaceArgs {
	style := ui.StyleFilled
	if a.BorderWidth > 0 {
		style = ui.StyleFilledOutlined
	}

	args := ui.SurfaceArgs{
		Width:       a.Width,
		Height:      a.Height,
		Padding:     a.Padding,
		Color:       a.backgroundColor(focused),
		BorderColor: a.borderColor(focused),
		BorderWidth: a.BorderWidth,
		Style:       style,
		Shape:       a.Shape,
	}
	if a.MinWidth != nil {
		args.MinWidth = *a.MinWidth
	}
	if a.MinHeight != nil {
		args.MinHeight = *a.MinHeight
	}
	return args
}

// ArgsBuilder assembles SyntaxEditorArgs starting from DefaultArgs, with
// Build validating the result.
type ArgsBuilder struct {
	args SyntaxEditorArgs
}

// NewArgs starts a builder from the defaults. Unlike DefaultArgs, the
// builder has no OnChange until one is set, so Build catches a missing one.
func NewArgs() *ArgsBuilder {
	args := DefaultArgs()
	args.OnChange = nil
	return &ArgsBuilder{args: args}
}

func (b *ArgsBuilder) Width(d ui.DimensionValue) *ArgsBuilder {
	b.args.Width = d
	return b
}

func (b *ArgsBuilder) Height(d ui.DimensionValue) *ArgsBuilder {
	b.args.Height = d
	return b
}

func (b *ArgsBuilder) MinWidth(v ui.Dp) *ArgsBuilder {
	b.args.MinWidth = &v
	return b
}

func (b *ArgsBuilder) MinHeight(v ui.Dp) *ArgsBuilder {
	b.args.MinHeight = &v
	return b
}

func (b *ArgsBuilder) BackgroundColor(c ui.Color) *ArgsBuilder {
	b.args.BackgroundColor = &c
	return b
}

func (b *ArgsBuilder) FocusBackgroundColor(c ui.Color) *ArgsBuilder {
	b.args.FocusBackgroundColor = &c
	return b
}

func (b *ArgsBuilder) BorderWidth(v ui.Dp) *ArgsBuilder {
	b.args.BorderWidth = v
	return b
}

func (b *ArgsBuilder) BorderColor(c ui.Color) *ArgsBuilder {
	b.args.BorderColor = &c
	return b
}

func (b *ArgsBuilder) FocusBorderColor(c ui.Color) *ArgsBuilder {
	b.args.FocusBorderColor = &c
	return b
}

func (b *ArgsBuilder) Shape(s ui.Shape) *ArgsBuilder {
	b.args.Shape = s
	return b
}

func (b *ArgsBuilder) Padding(v ui.Dp) *ArgsBuilder {
	b.args.Padding = v
	return b
}

func (b *ArgsBuilder) SelectionColor(c ui.Color) *ArgsBuilder {
	b.args.SelectionColor = &c
	return b
}

func (b *ArgsBuilder) ThemeName(name string) *ArgsBuilder {
	b.args.ThemeName = name
	return b
}

func (b *ArgsBuilder) FileExtension(ext string) *ArgsBuilder {
	b.args.FileExtension = ext
	return b
}

func (b *ArgsBuilder) OnChange(fn OnChange) *ArgsBuilder {
	b.args.OnChange = fn
	return b
}

// Build validates and returns the arguments.
func (b *ArgsBuilder) Build() (SyntaxEditorArgs, error) {
	if err := b.args.Validate(); err != nil {
		return SyntaxEditorArgs{}, fmt.Errorf("syntax editor args: %w", err)
	}
	return b.args, nil
}
