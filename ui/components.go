package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ionut-t/synedit/core"
)

// SurfaceArgs configures a styled container.
type SurfaceArgs struct {
	Width       DimensionValue
	Height      DimensionValue
	MinWidth    Dp
	MinHeight   Dp
	Padding     Dp
	Color       Color
	BorderColor Color
	BorderWidth Dp
	Style       SurfaceStyle
	Shape       Shape
}

// Surface draws a filled and/or outlined box around content, inset by the
// padding and border.
func Surface(s *Scope, args SurfaceArgs, content func(*Scope)) {
	s.Node("surface", func(s *Scope) {
		s.Measure(func(in MeasureInput) (ComputedData, error) {
			own := NewConstraint(
				args.Width.WithMin(args.MinWidth.ToPx()),
				args.Height.WithMin(args.MinHeight.ToPx()),
			).Merge(in.ParentConstraint())

			inset := args.Padding.ToPx()
			border := Px(0)
			if args.Style != StyleFilled {
				border = args.BorderWidth.ToPx()
			}
			inset += border

			inner := Constraint{Width: own.Width.Shrink(2 * inset), Height: own.Height.Shrink(2 * inset)}
			var cw, ch Px
			for _, id := range in.ChildIDs() {
				size, err := in.MeasureChild(id, inner)
				if err != nil {
					return ZeroSize, err
				}
				in.PlaceChild(id, PxPosition{X: inset, Y: inset})
				cw, ch = max(cw, size.Width), max(ch, size.Height)
			}

			in.EnableClipping()
			in.PushDrawCommand(RectCommand{
				Color:       args.Color,
				BorderColor: args.BorderColor,
				BorderWidth: border,
				Style:       args.Style,
				Shape:       args.Shape,
			})

			return ComputedData{
				Width:  own.Width.Resolve(cw + 2*inset),
				Height: own.Height.Resolve(ch + 2*inset),
			}, nil
		})

		if content != nil {
			content(s)
		}
	})
}

// atMost turns a parent axis into "anything up to its bound".
func atMost(d DimensionValue) DimensionValue {
	if m, ok := d.MaxPx(); ok {
		return WrapRange(0, m)
	}
	return Wrap()
}

// Column stacks the children declared by content from top to bottom.
func Column(s *Scope, content func(*Scope)) {
	s.Node("column", func(s *Scope) {
		s.Measure(func(in MeasureInput) (ComputedData, error) {
			parent := in.ParentConstraint()
			maxH, bounded := parent.Height.MaxPx()

			var w, y Px
			for _, id := range in.ChildIDs() {
				height := Wrap()
				if bounded {
					height = WrapRange(0, max(maxH-y, 0))
				}
				size, err := in.MeasureChild(id, Constraint{Width: atMost(parent.Width), Height: height})
				if err != nil {
					return ZeroSize, err
				}
				in.PlaceChild(id, PxPosition{X: 0, Y: y})
				w = max(w, size.Width)
				y += size.Height
			}
			return ComputedData{Width: parent.Width.Resolve(w), Height: parent.Height.Resolve(y)}, nil
		})
		content(s)
	})
}

// TextArgs styles plain text.
type TextArgs struct {
	Color Color
	Bold  bool
}

// Text displays text without wrapping, one row per line.
func Text(s *Scope, text string, args TextArgs) {
	lines := strings.Split(text, "\n")
	attrs := core.Attrs{Bold: args.Bold}
	if args.Color.A > 0 {
		attrs.Color = args.Color.Hex()
	}

	s.Node("text", func(s *Scope) {
		s.Measure(func(in MeasureInput) (ComputedData, error) {
			var w Px
			for _, line := range lines {
				w = max(w, Px(runewidth.StringWidth(line)))
			}
			in.EnableClipping()
			in.PushDrawCommand(DrawFunc(func(c Canvas, bounds Rect) {
				for row, line := range lines {
					x := bounds.X
					for _, r := range line {
						rw := runewidth.RuneWidth(r)
						c.Glyph(x, bounds.Y+Px(row), string(r), rw, attrs)
						x += Px(rw)
					}
				}
			}))
			c := in.ParentConstraint()
			return ComputedData{Width: c.Width.Resolve(w), Height: c.Height.Resolve(Px(len(lines)))}, nil
		})
	})
}

// Spacer takes up a fixed amount of space.
func Spacer(s *Scope, width, height Dp) {
	s.Node("spacer", func(s *Scope) {
		s.Measure(func(in MeasureInput) (ComputedData, error) {
			return ComputedData{Width: width.ToPx(), Height: height.ToPx()}, nil
		})
	})
}

// ScrollableState remembers the vertical offset of a Scrollable between frames.
type ScrollableState struct {
	offset    Px
	maxScroll Px
}

func NewScrollableState() *ScrollableState {
	return &ScrollableState{}
}

func (st *ScrollableState) Offset() Px {
	return st.offset
}

// ScrollBy moves the content by delta rows, clamped to the content.
func (st *ScrollableState) ScrollBy(delta Px) {
	st.offset = min(max(st.offset+delta, 0), st.maxScroll)
}

// Scrollable clips content to the available height and scrolls it with the
// wheel. Scroll events already consumed by the content are not seen.
func Scrollable(s *Scope, state *ScrollableState, content func(*Scope)) {
	s.Node("scrollable", func(s *Scope) {
		s.Measure(func(in MeasureInput) (ComputedData, error) {
			parent := in.ParentConstraint()
			var w, h Px
			for _, id := range in.ChildIDs() {
				size, err := in.MeasureChild(id, Constraint{Width: atMost(parent.Width), Height: Wrap()})
				if err != nil {
					return ZeroSize, err
				}
				w, h = max(w, size.Width), max(h, size.Height)
			}

			size := ComputedData{Width: parent.Width.Resolve(w), Height: parent.Height.Resolve(h)}
			state.maxScroll = max(h-size.Height, 0)
			state.ScrollBy(0)

			for _, id := range in.ChildIDs() {
				in.PlaceChild(id, PxPosition{X: 0, Y: -state.offset})
			}
			in.EnableClipping()
			return size, nil
		})

		s.Input(func(in *InputContext) {
			pos := in.CursorPosition
			if pos == nil || !(Rect{Width: in.ComputedData.Width, Height: in.ComputedData.Height}).Contains(pos.X, pos.Y) {
				return
			}
			rest := in.CursorEvents[:0:0]
			for _, ev := range in.CursorEvents {
				if ev.Kind == CursorScroll {
					state.ScrollBy(Px(-ev.DeltaY))
					continue
				}
				rest = append(rest, ev)
			}
			in.CursorEvents = rest
		})

		content(s)
	})
}
