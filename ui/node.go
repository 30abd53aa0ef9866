package ui

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownChild = errors.New("not a child of the measured node")
	ErrNoFrame      = errors.New("no frame has been built")
)

// NodeID identifies a node within one frame.
type NodeID int

// MeasureInput is what a node's measure function works with.
type MeasureInput interface {
	ParentConstraint() Constraint
	// ChildIDs lists the node's children in declaration order.
	ChildIDs() []NodeID
	MeasureChild(id NodeID, c Constraint) (ComputedData, error)
	// PlaceChild positions a measured child relative to this node. Children
	// that are never placed are not drawn.
	PlaceChild(id NodeID, pos PxPosition)
	EnableClipping()
	PushDrawCommand(cmd DrawCommand)
	// Invalidate asks the runtime to build and measure the frame again
	// before drawing, because this pass changed what the build depends on.
	Invalidate()
}

// MeasureFunc sizes a node.
type MeasureFunc func(in MeasureInput) (ComputedData, error)

type node struct {
	id       NodeID
	name     string
	measure  MeasureFunc
	input    InputHandlerFunc
	parent   *node
	children []*node

	size   ComputedData
	offset PxPosition
	placed bool
	clip   bool
	draws  []DrawCommand
}

// Scope is where a component declares its node: measure behaviour, input
// handling and children.
type Scope struct {
	rt   *Runtime
	node *node
}

// Node declares a child node built by fn.
func (s *Scope) Node(name string, fn func(*Scope)) {
	child := s.rt.newNode(name, s.node)
	s.node.children = append(s.node.children, child)
	if fn != nil {
		fn(&Scope{rt: s.rt, node: child})
	}
}

// Measure sets how this node is sized. Without one, children are stacked at
// the origin and the node wraps the largest of them.
func (s *Scope) Measure(fn MeasureFunc) {
	s.node.measure = fn
}

// Input installs the node's input handler.
func (s *Scope) Input(fn InputHandlerFunc) {
	s.node.input = fn
}

type measureCtx struct {
	rt         *Runtime
	node       *node
	constraint Constraint
}

func (m *measureCtx) ParentConstraint() Constraint {
	return m.constraint
}

func (m *measureCtx) ChildIDs() []NodeID {
	ids := make([]NodeID, len(m.node.children))
	for i, c := range m.node.children {
		ids[i] = c.id
	}
	return ids
}

func (m *measureCtx) child(id NodeID) (*node, error) {
	for _, c := range m.node.children {
		if c.id == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: node %d under %q", ErrUnknownChild, id, m.node.name)
}

func (m *measureCtx) MeasureChild(id NodeID, c Constraint) (ComputedData, error) {
	child, err := m.child(id)
	if err != nil {
		return ZeroSize, err
	}
	return m.rt.measureNode(child, c)
}

func (m *measureCtx) PlaceChild(id NodeID, pos PxPosition) {
	if child, err := m.child(id); err == nil {
		child.offset = pos
		child.placed = true
	}
}

func (m *measureCtx) EnableClipping() {
	m.node.clip = true
}

func (m *measureCtx) PushDrawCommand(cmd DrawCommand) {
	m.node.draws = append(m.node.draws, cmd)
}

func (m *measureCtx) Invalidate() {
	m.rt.invalid = true
}

// stackMeasure is the default measure: every child at the origin, sized to
// the largest.
func stackMeasure(in MeasureInput) (ComputedData, error) {
	c := in.ParentConstraint()
	var w, h Px
	for _, id := range in.ChildIDs() {
		size, err := in.MeasureChild(id, c)
		if err != nil {
			return ZeroSize, err
		}
		in.PlaceChild(id, PxPosition{})
		w, h = max(w, size.Width), max(h, size.Height)
	}
	return ComputedData{Width: c.Width.Resolve(w), Height: c.Height.Resolve(h)}, nil
}
