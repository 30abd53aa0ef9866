package syntaxedit

import (
	"time"

	"github.com/ionut-t/synedit/ui"
)

// ClickType is the kind of a press after taking earlier presses into account.
type ClickType int

const (
	ClickSingle ClickType = iota
	ClickDouble
	ClickTriple
)

func (c ClickType) String() string {
	switch c {
	case ClickDouble:
		return "double"
	case ClickTriple:
		return "triple"
	default:
		return "single"
	}
}

const (
	// DoubleClickInterval is the longest gap between presses of one multi-click.
	DoubleClickInterval = 500 * time.Millisecond
	// ClickDistanceThreshold is the furthest, in Manhattan distance, a press
	// may land from the previous one and still count towards a multi-click.
	ClickDistanceThreshold ui.Px = 2
)

// HandleClick classifies a press at the text-relative pos and records it.
func (s *EditorState) HandleClick(pos ui.PxPosition, at time.Time) ClickType {
	s.mu.Lock()
	defer s.mu.Unlock()

	repeat := s.lastClickPosition != nil &&
		at.Sub(s.lastClickTime) <= DoubleClickInterval &&
		!at.Before(s.lastClickTime) &&
		manhattan(*s.lastClickPosition, pos) <= ClickDistanceThreshold

	if repeat {
		s.clickCount++
	} else {
		s.clickCount = 1
	}
	if s.clickCount > 3 {
		s.clickCount = 1
	}

	s.lastClickPosition = &pos
	s.lastClickTime = at

	switch s.clickCount {
	case 2:
		return ClickDouble
	case 3:
		return ClickTriple
	default:
		return ClickSingle
	}
}

func manhattan(a, b ui.PxPosition) ui.Px {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v ui.Px) ui.Px {
	if v < 0 {
		return -v
	}
	return v
}
