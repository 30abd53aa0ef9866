package ui

import "fmt"

// Color is a linear RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	WHITE       = Color{1, 1, 1, 1}
	BLACK       = Color{0, 0, 0, 1}
	TRANSPARENT = Color{}
)

func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Over composites c over dst. The result is opaque when dst is.
func (c Color) Over(dst Color) Color {
	a := c.A + dst.A*(1-c.A)
	if a == 0 {
		return TRANSPARENT
	}
	blend := func(s, d float32) float32 {
		return (s*c.A + d*dst.A*(1-c.A)) / a
	}
	return Color{R: blend(c.R, dst.R), G: blend(c.G, dst.G), B: blend(c.B, dst.B), A: a}
}

// Hex formats the colour as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float32) uint8 {
	v = min(max(v, 0), 1)
	return uint8(v*255 + 0.5)
}

// ParseHex reads #rgb or #rrggbb.
func ParseHex(s string) (Color, error) {
	var r, g, b uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
		r, g, b = r*17, g*17, b*17
	default:
		return Color{}, fmt.Errorf("parse colour %q: want #rgb or #rrggbb", s)
	}
	return RGB(float32(r)/255, float32(g)/255, float32(b)/255), nil
}
