// Package ui is a small immediate-mode layout toolkit. Components declare a
// node tree every frame through a Scope; the Runtime measures it, collects
// draw commands, renders them onto a Canvas and routes input back to the
// nodes' handlers using the sizes from the last measurement.
package ui

import (
	"math"
	"sync/atomic"
)

// Px is a length in device cells.
type Px int32

// PxMax stands in for an unbounded length.
const PxMax Px = math.MaxInt32

// Dp is a density independent length, converted with the process scale factor.
type Dp float32

var scaleBits atomic.Uint64

func init() {
	scaleBits.Store(math.Float64bits(1))
}

// SetScaleFactor sets how many Px one Dp is worth. Hosts with coarse cells
// (terminals) use a factor well below one.
func SetScaleFactor(f float64) {
	if f <= 0 {
		f = 1
	}
	scaleBits.Store(math.Float64bits(f))
}

func ScaleFactor() float64 {
	return math.Float64frombits(scaleBits.Load())
}

// ToPx converts to Px. Positive lengths never round down to zero.
func (d Dp) ToPx() Px {
	if d <= 0 {
		return 0
	}
	px := Px(math.Round(float64(d) * ScaleFactor()))
	return max(px, 1)
}

// PxPosition is a point in Px.
type PxPosition struct {
	X Px
	Y Px
}

func (p PxPosition) Offset(x, y Px) PxPosition {
	return PxPosition{X: p.X + x, Y: p.Y + y}
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y          Px
	Width, Height Px
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of r and o, empty when they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1 := min(saturatingAdd(r.X, r.Width), saturatingAdd(o.X, o.Width))
	y1 := min(saturatingAdd(r.Y, r.Height), saturatingAdd(o.Y, o.Height))
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (r Rect) Contains(x, y Px) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.Width && y < r.Y+r.Height
}

func saturatingAdd(a, b Px) Px {
	s := int64(a) + int64(b)
	if s > int64(PxMax) {
		return PxMax
	}
	return Px(s)
}
