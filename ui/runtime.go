package ui

import "fmt"

// maxBuilds bounds how often one Frame call may rebuild after Invalidate.
const maxBuilds = 2

// Runtime owns the node tree of the last frame. It is driven from a single
// goroutine: Frame, then Render, then Dispatch for input arriving before the
// next frame.
type Runtime struct {
	nextID  NodeID
	root    *node
	invalid bool
}

func NewRuntime() *Runtime {
	return &Runtime{}
}

func (rt *Runtime) newNode(name string, parent *node) *node {
	rt.nextID++
	return &node{id: rt.nextID, name: name, parent: parent}
}

// Frame declares the tree with build and measures it under c. A measure
// function that calls Invalidate gets the tree rebuilt once more so the
// drawn frame reflects what it measured.
func (rt *Runtime) Frame(c Constraint, build func(*Scope)) (ComputedData, error) {
	var size ComputedData
	for range maxBuilds {
		rt.invalid = false
		rt.nextID = 0

		root := rt.newNode("root", nil)
		build(&Scope{rt: rt, node: root})

		var err error
		if size, err = rt.measureNode(root, c); err != nil {
			rt.root = nil
			return ZeroSize, fmt.Errorf("measure frame: %w", err)
		}
		root.placed = true
		rt.root = root

		if !rt.invalid {
			break
		}
	}
	return size, nil
}

func (rt *Runtime) measureNode(n *node, c Constraint) (ComputedData, error) {
	n.draws = n.draws[:0]
	n.clip = false
	for _, child := range n.children {
		child.placed = false
	}

	measure := n.measure
	if measure == nil {
		measure = stackMeasure
	}

	size, err := measure(&measureCtx{rt: rt, node: n, constraint: c})
	if err != nil {
		return ZeroSize, fmt.Errorf("%s: %w", n.name, err)
	}
	n.size = size
	return size, nil
}

// Render draws the last frame.
func (rt *Runtime) Render(c Canvas) error {
	if rt.root == nil {
		return ErrNoFrame
	}
	size := c.Size()
	rt.render(c, rt.root, PxPosition{}, Rect{Width: size.Width, Height: size.Height})
	return nil
}

func (rt *Runtime) render(c Canvas, n *node, origin PxPosition, clip Rect) {
	if !n.placed {
		return
	}

	abs := origin.Offset(n.offset.X, n.offset.Y)
	bounds := Rect{X: abs.X, Y: abs.Y, Width: n.size.Width, Height: n.size.Height}
	if n.clip {
		clip = clip.Intersect(bounds)
	}
	if clip.Empty() {
		return
	}

	c.SetClip(clip)
	for _, cmd := range n.draws {
		cmd.Draw(c, bounds)
	}
	for _, child := range n.children {
		rt.render(c, child, abs, clip)
	}
}

// DispatchResult is what is left after every handler ran.
type DispatchResult struct {
	Requests   WindowRequests
	Unconsumed InputEvents
}

// Dispatch routes input to the handlers of the last frame, topmost first:
// children before their parent, later siblings before earlier ones.
func (rt *Runtime) Dispatch(ev InputEvents) DispatchResult {
	res := DispatchResult{}
	in := &InputContext{
		CursorEvents:   ev.CursorEvents,
		KeyboardEvents: ev.KeyboardEvents,
		KeyModifiers:   ev.KeyModifiers,
		ImeEvents:      ev.ImeEvents,
		Requests:       &res.Requests,
		Clipboard:      ev.Clipboard,
		Now:            ev.Now,
	}

	if rt.root != nil {
		rt.dispatch(rt.root, PxPosition{}, ev.CursorPosition, in)
	}

	res.Unconsumed = InputEvents{
		CursorPosition: ev.CursorPosition,
		CursorEvents:   in.CursorEvents,
		KeyboardEvents: in.KeyboardEvents,
		KeyModifiers:   ev.KeyModifiers,
		ImeEvents:      in.ImeEvents,
		Clipboard:      ev.Clipboard,
		Now:            ev.Now,
	}
	return res
}

func (rt *Runtime) dispatch(n *node, origin PxPosition, cursor *PxPosition, in *InputContext) {
	if !n.placed {
		return
	}
	abs := origin.Offset(n.offset.X, n.offset.Y)

	for i := len(n.children) - 1; i >= 0; i-- {
		rt.dispatch(n.children[i], abs, cursor, in)
	}

	if n.input == nil {
		return
	}

	in.ComputedData = n.size
	in.origin = abs
	in.CursorPosition = nil
	if cursor != nil {
		rel := PxPosition{X: cursor.X - abs.X, Y: cursor.Y - abs.Y}
		in.CursorPosition = &rel
	}

	n.input(in)

	if req := in.Requests.ImeRequest; req != nil && req.Position == nil {
		pos := abs
		req.Position = &pos
	}
}
