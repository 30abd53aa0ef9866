package ui

// DimensionKind is the sizing policy of one axis.
type DimensionKind int

const (
	DimensionWrap DimensionKind = iota // size to content, between Min and Max
	DimensionFixed
	DimensionFill // take all available space up to Max
)

// DimensionValue sizes one axis. Max is only meaningful when Bounded is set.
type DimensionValue struct {
	Kind    DimensionKind
	Value   Px // for DimensionFixed
	Min     Px
	Max     Px
	Bounded bool
}

var (
	WRAP   = DimensionValue{Kind: DimensionWrap}
	FILLED = DimensionValue{Kind: DimensionFill}
)

func Fixed(px Px) DimensionValue {
	return DimensionValue{Kind: DimensionFixed, Value: px}
}

func Wrap() DimensionValue {
	return WRAP
}

func WrapRange(minPx, maxPx Px) DimensionValue {
	return DimensionValue{Kind: DimensionWrap, Min: minPx, Max: maxPx, Bounded: true}
}

func Fill() DimensionValue {
	return FILLED
}

func FillMax(maxPx Px) DimensionValue {
	return DimensionValue{Kind: DimensionFill, Max: maxPx, Bounded: true}
}

// MaxPx returns the largest size the policy allows, false when unbounded.
func (d DimensionValue) MaxPx() (Px, bool) {
	if d.Kind == DimensionFixed {
		return d.Value, true
	}
	return d.Max, d.Bounded
}

// WithMin returns d with a minimum size.
func (d DimensionValue) WithMin(minPx Px) DimensionValue {
	d.Min = minPx
	return d
}

// Shrink reduces the available space by px, for padding and borders.
func (d DimensionValue) Shrink(px Px) DimensionValue {
	switch d.Kind {
	case DimensionFixed:
		d.Value = max(d.Value-px, 0)
	default:
		d.Min = max(d.Min-px, 0)
		if d.Bounded {
			d.Max = max(d.Max-px, 0)
		}
	}
	return d
}

// Merge combines a component's own policy with what its parent offers. The
// parent's bound always wins over the child's.
func (d DimensionValue) Merge(parent DimensionValue) DimensionValue {
	pmax, pbounded := parent.MaxPx()
	if !pbounded {
		return d
	}

	switch d.Kind {
	case DimensionFixed:
		d.Value = min(d.Value, pmax)
	case DimensionFill:
		if parent.Kind == DimensionFixed {
			v := pmax
			if d.Bounded {
				v = min(v, d.Max)
			}
			return DimensionValue{Kind: DimensionFixed, Value: max(v, d.Min)}
		}
		fallthrough
	default:
		if !d.Bounded || pmax < d.Max {
			d.Max = pmax
		}
		d.Bounded = true
		d.Min = min(d.Min, d.Max)
	}
	return d
}

// Resolve picks the final size for content of the given size.
func (d DimensionValue) Resolve(content Px) Px {
	switch d.Kind {
	case DimensionFixed:
		return d.Value
	case DimensionFill:
		if d.Bounded {
			return max(d.Max, d.Min)
		}
		return max(content, d.Min)
	default:
		v := max(content, d.Min)
		if d.Bounded {
			v = min(v, d.Max)
		}
		return v
	}
}

// Constraint is the pair of axis policies passed down during measurement.
type Constraint struct {
	Width  DimensionValue
	Height DimensionValue
}

func NewConstraint(width, height DimensionValue) Constraint {
	return Constraint{Width: width, Height: height}
}

// Merge applies the parent's bounds to c on both axes.
func (c Constraint) Merge(parent Constraint) Constraint {
	return Constraint{Width: c.Width.Merge(parent.Width), Height: c.Height.Merge(parent.Height)}
}

// ComputedData is a measured size.
type ComputedData struct {
	Width  Px
	Height Px
}

var ZeroSize = ComputedData{}
