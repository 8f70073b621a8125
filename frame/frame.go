// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/base/errors"
)

var (
	// ErrInvalidFrame is returned when an operation is given a frame
	// handle that does not refer to a frame of the graph.
	ErrInvalidFrame = errors.New("frame: invalid frame")

	// ErrUnknownName is returned when a name lookup finds no frame.
	ErrUnknownName = errors.New("frame: unknown frame name")

	// ErrAmbiguousName is returned when a name lookup finds more than one frame.
	ErrAmbiguousName = errors.New("frame: ambiguous frame name")

	// ErrUnnamedDynamic is returned when a dynamic frame is created
	// without a parameter name to drive it.
	ErrUnnamedDynamic = errors.New("frame: dynamic frame needs a name")

	// ErrZeroDirection is returned when a dynamic translation is created
	// with a zero offset, which leaves its direction undefined.
	ErrZeroDirection = errors.New("frame: dynamic translation needs a non-zero direction")
)

// ID is a stable handle to a frame within its [Graph].
type ID int32

// NoID is the handle of no frame, which stands for the world.
const NoID ID = -1

// rules are the update rules bound to dynamic frames.
type rule int32

const (
	ruleNone rule = iota
	ruleRotate
	ruleTranslate
)

// node is the arena storage of one frame.
type node struct {
	parent   ID
	children []ID
	name     string
	dynamic  bool

	// rule, axis and dir define how a dynamic frame
	// rebuilds its local transform from a parameter value.
	rule rule
	axis Axis
	dir  mgl64.Vec3

	local Transform

	// anchor is the nearest dynamic frame among this frame and
	// its ancestors, or NoID if there is none.
	anchor ID

	// static is the transform from this frame to its anchor
	// (or to the world without an anchor). It never changes.
	static Transform

	// world is the per-tick cached transform to the world,
	// valid only while cached is set.
	world  Transform
	cached bool
}

// Graph is the arena that owns all frames of one scene. Frames are
// never removed individually; the whole graph is dropped together.
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes []node

	// dynamic indexes dynamic frames by parameter name.
	dynamic map[string][]ID

	errs []error
}

// NewGraph returns a new empty frame graph.
func NewGraph() *Graph {
	return &Graph{dynamic: make(map[string][]ID)}
}

// Len returns the number of frames in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// NewFrame adds a new root frame positioned at the world origin.
func (g *Graph) NewFrame() Frame {
	return g.add(NoID, Identity(), "", false)
}

// Frame returns the handle for the given id.
func (g *Graph) Frame(id ID) Frame {
	return Frame{g: g, id: id}
}

// Err returns all authoring errors recorded on the graph, joined,
// or nil if there were none.
func (g *Graph) Err() error {
	return errors.Join(g.errs...)
}

// Errors returns the authoring errors recorded on the graph,
// in the order they occurred.
func (g *Graph) Errors() []error {
	return g.errs
}

// addErr records an authoring error.
func (g *Graph) addErr(err error) {
	g.errs = append(g.errs, err)
}

func (g *Graph) valid(id ID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// add creates a child of parent with the given local transform and
// computes its static cached transform.
func (g *Graph) add(parent ID, local Transform, name string, dynamic bool) Frame {
	id := ID(len(g.nodes))
	n := node{parent: parent, name: name, dynamic: dynamic, local: local, anchor: NoID}
	switch {
	case dynamic:
		n.anchor = id
		n.static = Identity()
	case parent == NoID:
		n.static = local
	default:
		p := &g.nodes[parent]
		n.anchor = p.anchor
		n.static = p.static.Mul(local)
	}
	g.nodes = append(g.nodes, n)
	if parent != NoID {
		g.nodes[parent].children = append(g.nodes[parent].children, id)
	}
	if dynamic {
		g.dynamic[name] = append(g.dynamic[name], id)
	}
	return Frame{g: g, id: id}
}

// DynamicNames returns the number of distinct parameter names
// that drive dynamic frames.
func (g *Graph) DynamicNames() int {
	return len(g.dynamic)
}

// Set applies the given parameter value to every dynamic frame with
// the given name, returning how many frames were updated.
func (g *Graph) Set(name string, value float64) int {
	ids := g.dynamic[name]
	for _, id := range ids {
		n := &g.nodes[id]
		switch n.rule {
		case ruleRotate:
			n.local.Rot = n.axis.Rotation(value)
		case ruleTranslate:
			n.local.Pos = n.dir.Mul(value)
		}
	}
	return len(ids)
}

// Apply applies every parameter in params that names a dynamic frame,
// returning the number of frames updated. Dynamic frames with no
// entry keep their previous local transform.
func (g *Graph) Apply(params map[string]float64) int {
	count := 0
	for name, v := range params {
		count += g.Set(name, v)
	}
	return count
}

// Find returns the unique frame in the graph with the given name.
// Finding no frame or more than one is an authoring error, which is
// also recorded on the graph.
func (g *Graph) Find(name string) (Frame, error) {
	found := NoID
	count := 0
	for i := range g.nodes {
		if g.nodes[i].name == name {
			found = ID(i)
			count++
		}
	}
	return g.found(name, found, count)
}

// found returns the result of a name lookup that matched count
// frames, the last being found.
func (g *Graph) found(name string, found ID, count int) (Frame, error) {
	var err error
	switch {
	case count == 0:
		err = fmt.Errorf("Find %q: %w", name, ErrUnknownName)
	case count > 1:
		err = fmt.Errorf("Find %q: %d frames: %w", name, count, ErrAmbiguousName)
	}
	if err != nil {
		g.addErr(err)
		return Frame{g: g, id: NoID}, err
	}
	return Frame{g: g, id: found}, nil
}

// Reset clears the per-tick world cache of every frame.
// It must be called before dynamic frames are mutated.
func (g *Graph) Reset() {
	for i := range g.nodes {
		g.nodes[i].cached = false
	}
}

// Frame is a handle to a node of a [Graph]: an oriented, positioned
// coordinate system relative to its parent, or to the world if it has
// no parent. The zero Frame refers to the world itself.
type Frame struct {
	g  *Graph
	id ID
}

// IsValid returns whether the frame refers to a frame of a graph.
func (f Frame) IsValid() bool {
	return f.g != nil && f.g.valid(f.id)
}

// ID returns the arena handle of the frame.
func (f Frame) ID() ID {
	if f.g == nil {
		return NoID
	}
	return f.id
}

// Graph returns the graph that owns the frame.
func (f Frame) Graph() *Graph {
	return f.g
}

func (f Frame) node() *node {
	return &f.g.nodes[f.id]
}

// check records an error on the graph if the frame is invalid.
func (f Frame) check(op string) bool {
	if f.IsValid() {
		return true
	}
	// a NoID handle comes from an earlier failed call that was already recorded
	if f.g != nil && f.id != NoID {
		f.g.addErr(fmt.Errorf("%s on frame %d: %w", op, f.id, ErrInvalidFrame))
	}
	return false
}

// Name returns the name of the frame.
func (f Frame) Name() string {
	if !f.IsValid() {
		return ""
	}
	return f.node().name
}

// IsDynamic returns whether the frame is driven by a named parameter.
func (f Frame) IsDynamic() bool {
	return f.IsValid() && f.node().dynamic
}

// Parent returns the parent frame, which is the world (the zero
// Frame) for root frames.
func (f Frame) Parent() Frame {
	if !f.IsValid() || f.node().parent == NoID {
		return Frame{}
	}
	return Frame{g: f.g, id: f.node().parent}
}

// Local returns the local transform of the frame relative to its parent.
func (f Frame) Local() Transform {
	if !f.IsValid() {
		return Identity()
	}
	return f.node().local
}

// Static returns the static cached transform from the frame to its
// nearest dynamic ancestor-or-self, along with that anchor, which is
// the world when there is no dynamic ancestor.
func (f Frame) Static() (Transform, Frame) {
	if !f.IsValid() {
		return Identity(), Frame{}
	}
	n := f.node()
	if n.anchor == NoID {
		return n.static, Frame{}
	}
	return n.static, Frame{g: f.g, id: n.anchor}
}

// SetName sets the name used to find the frame; for dynamic frames it
// is also the name of the parameter that drives it.
func (f Frame) SetName(name string) Frame {
	if !f.check("SetName") {
		return f
	}
	n := f.node()
	if n.dynamic {
		ids := f.g.dynamic[n.name]
		for i, id := range ids {
			if id == f.id {
				ids = append(ids[:i], ids[i+1:]...)
				break
			}
		}
		if len(ids) == 0 {
			delete(f.g.dynamic, n.name)
		} else {
			f.g.dynamic[n.name] = ids
		}
		f.g.dynamic[name] = append(f.g.dynamic[name], f.id)
	}
	n.name = name
	return f
}

// Rotate returns a new static child frame rotated by the given angle
// in radians about the given axis.
func (f Frame) Rotate(axis Axis, angle float64) Frame {
	if !f.check("Rotate") {
		return Frame{g: f.g, id: NoID}
	}
	return f.g.add(f.id, Rotation(axis, angle), "", false)
}

// RotateAboutX returns a new static child frame rotated about X.
func (f Frame) RotateAboutX(angle float64) Frame { return f.Rotate(X, angle) }

// RotateAboutY returns a new static child frame rotated about Y.
func (f Frame) RotateAboutY(angle float64) Frame { return f.Rotate(Y, angle) }

// RotateAboutZ returns a new static child frame rotated about Z.
func (f Frame) RotateAboutZ(angle float64) Frame { return f.Rotate(Z, angle) }

// Translate returns a new static child frame offset by the given amounts.
func (f Frame) Translate(dx, dy, dz float64) Frame {
	if !f.check("Translate") {
		return Frame{g: f.g, id: NoID}
	}
	return f.g.add(f.id, Translation(dx, dy, dz), "", false)
}

// DynamicRotate returns a new dynamic child frame rotated about the
// given axis, whose angle is set from the parameter with the given
// name on every update. The angle is the initial value.
func (f Frame) DynamicRotate(axis Axis, name string, angle float64) Frame {
	if !f.check("DynamicRotate") {
		return Frame{g: f.g, id: NoID}
	}
	if name == "" {
		f.g.addErr(fmt.Errorf("DynamicRotate about %v: %w", axis, ErrUnnamedDynamic))
		return Frame{g: f.g, id: NoID}
	}
	c := f.g.add(f.id, Rotation(axis, angle), name, true)
	n := c.node()
	n.rule = ruleRotate
	n.axis = axis
	return c
}

// DynamicRotateAboutX returns a new dynamic child frame rotating about X.
func (f Frame) DynamicRotateAboutX(name string, angle float64) Frame {
	return f.DynamicRotate(X, name, angle)
}

// DynamicRotateAboutY returns a new dynamic child frame rotating about Y.
func (f Frame) DynamicRotateAboutY(name string, angle float64) Frame {
	return f.DynamicRotate(Y, name, angle)
}

// DynamicRotateAboutZ returns a new dynamic child frame rotating about Z.
func (f Frame) DynamicRotateAboutZ(name string, angle float64) Frame {
	return f.DynamicRotate(Z, name, angle)
}

// DynamicTranslate returns a new dynamic child frame offset by the
// given amounts. The parameter with the given name sets the distance
// along the direction of the offset; the initial distance is the
// length of the offset.
func (f Frame) DynamicTranslate(name string, dx, dy, dz float64) Frame {
	if !f.check("DynamicTranslate") {
		return Frame{g: f.g, id: NoID}
	}
	if name == "" {
		f.g.addErr(fmt.Errorf("DynamicTranslate: %w", ErrUnnamedDynamic))
		return Frame{g: f.g, id: NoID}
	}
	off := mgl64.Vec3{dx, dy, dz}
	l := off.Len()
	if l < 1e-12 {
		f.g.addErr(fmt.Errorf("DynamicTranslate %q: %w", name, ErrZeroDirection))
		return Frame{g: f.g, id: NoID}
	}
	c := f.g.add(f.id, Translation(dx, dy, dz), name, true)
	n := c.node()
	n.rule = ruleTranslate
	n.dir = off.Mul(1 / l)
	return c
}

// Find returns the unique frame with the given name in the subtree
// rooted at f, including f itself. Finding no frame or more than one
// is an authoring error, which is also recorded on the graph.
func (f Frame) Find(name string) (Frame, error) {
	if !f.check("Find") {
		return Frame{g: f.g, id: NoID}, ErrInvalidFrame
	}
	found := NoID
	count := 0
	stack := []ID{f.id}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &f.g.nodes[id]
		if n.name == name {
			found = id
			count++
		}
		stack = append(stack, n.children...)
	}
	return f.g.found(name, found, count)
}

func (f Frame) String() string {
	if !f.IsValid() {
		return "Frame(world)"
	}
	n := f.node()
	if n.name != "" {
		return fmt.Sprintf("Frame(%d %q)", f.id, n.name)
	}
	return fmt.Sprintf("Frame(%d)", f.id)
}
