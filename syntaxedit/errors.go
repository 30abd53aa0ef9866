package syntaxedit

import "errors"

var (
	ErrMissingOnChange   = errors.New("on_change callback is required")
	ErrNegativeBorder    = errors.New("border width must not be negative")
	ErrNegativePadding   = errors.New("padding must not be negative")
	ErrEmptyThemeName    = errors.New("theme name must not be empty")
	ErrMinAboveFixedSize = errors.New("minimum size exceeds fixed size")
)
