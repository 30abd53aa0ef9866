package ui

// ShapeKind selects the outline of a surface.
type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeRoundedRectangle
)

// Shape is a rectangle, optionally with rounded corners. G2K controls the
// corner curvature continuity of smooth-corner renderers.
type Shape struct {
	Kind        ShapeKind
	TopLeft     Dp
	TopRight    Dp
	BottomRight Dp
	BottomLeft  Dp
	G2K         float32
}

// RoundedRectangle has the same radius on every corner.
func RoundedRectangle(radius Dp, g2k float32) Shape {
	return Shape{
		Kind:        ShapeRoundedRectangle,
		TopLeft:     radius,
		TopRight:    radius,
		BottomRight: radius,
		BottomLeft:  radius,
		G2K:         g2k,
	}
}

// Rounded reports whether any corner has a radius.
func (s Shape) Rounded() bool {
	return s.Kind == ShapeRoundedRectangle &&
		(s.TopLeft > 0 || s.TopRight > 0 || s.BottomRight > 0 || s.BottomLeft > 0)
}

// SurfaceStyle says whether a surface is filled, outlined or both.
type SurfaceStyle int

const (
	StyleFilled SurfaceStyle = iota
	StyleOutlined
	StyleFilledOutlined
)
