// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides [Renderer], which owns a frame graph and the
// primitives attached to it, updates them from named parameters each
// tick, and draws them in layers with a painter's depth sort.
package scene

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/base/errors"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/frame"
	"github.com/robobenjie/skifreeordie-sub000/shape"
	"github.com/robobenjie/skifreeordie-sub000/surface"
)

// ErrInvalidLayer is returned when a primitive is attached to a
// negative layer.
var ErrInvalidLayer = errors.New("scene: invalid layer")

// Renderer owns the frames and primitives of one scene.
//
// Each tick, call [Renderer.Update] and then [Renderer.Draw].
// Layers are drawn in index order; within a layer, primitives are
// drawn from the smallest to the largest depth key, with ties kept
// in the order the primitives were attached.
//
// Authoring calls that fail record an error, available from
// [Renderer.Err], instead of returning one, so that models can be
// built with chained calls. A Renderer is not safe for concurrent use.
type Renderer struct {

	// Camera is the projection used to draw.
	Camera camera.Camera

	// Origin is the screen position in pixels of the world origin.
	Origin mgl64.Vec2

	// Zoom scales the whole drawing about the origin.
	Zoom float64

	graph  *frame.Graph
	layers [][]shape.Primitive

	// sorted is the scratch slice for depth sorting a layer.
	sorted []shape.Primitive

	errs    []error
	elapsed float64
	ticks   int
}

// NewRenderer returns a new empty renderer using the given camera.
func NewRenderer(cam camera.Camera) *Renderer {
	return &Renderer{Camera: cam, Zoom: 1, graph: frame.NewGraph()}
}

// Graph returns the frame graph of the scene.
func (r *Renderer) Graph() *frame.Graph {
	return r.graph
}

// NewFrame returns a new root frame at the world origin.
func (r *Renderer) NewFrame() frame.Frame {
	return r.graph.NewFrame()
}

// Frame returns the unique frame in the scene with the given name.
// An unknown or ambiguous name is an authoring error.
func (r *Renderer) Frame(name string) frame.Frame {
	f, err := r.graph.Find(name)
	errors.Log(err)
	return f
}

// Err returns all authoring errors recorded on the renderer and its
// frame graph, joined, or nil if there were none.
func (r *Renderer) Err() error {
	return errors.Join(append(slices.Clone(r.errs), r.graph.Err())...)
}

// Checkpoint marks the authoring errors recorded up to some point.
type Checkpoint struct {
	errs, graph int
}

// Checkpoint returns a mark of the authoring errors recorded so far,
// for use with [Renderer.ErrSince].
func (r *Renderer) Checkpoint() Checkpoint {
	return Checkpoint{errs: len(r.errs), graph: len(r.graph.Errors())}
}

// ErrSince returns the authoring errors recorded after the given
// checkpoint, joined, or nil if there were none. Model constructors
// use it to fail only for their own errors.
func (r *Renderer) ErrSince(c Checkpoint) error {
	errs := slices.Clone(r.errs[c.errs:])
	return errors.Join(append(errs, r.graph.Errors()[c.graph:]...)...)
}

// addErr records and logs an authoring error.
func (r *Renderer) addErr(err error) {
	r.errs = append(r.errs, errors.Log(err))
}

// Elapsed returns the total time passed to [Renderer.Update].
func (r *Renderer) Elapsed() float64 {
	return r.elapsed
}

// Layers returns the number of layers.
func (r *Renderer) Layers() int {
	return len(r.layers)
}

// Primitives returns the primitives of the given layer in the order
// they were attached.
func (r *Renderer) Primitives(layer int) []shape.Primitive {
	if layer < 0 || layer >= len(r.layers) {
		return nil
	}
	return r.layers[layer]
}

// Add attaches the primitive to the layer given by its [shape.Base].
// It returns false and records an error if the primitive is nil,
// malformed, has an invalid frame or a negative layer. A primitive
// added after the last [Renderer.Update] is not drawn until the next.
func (r *Renderer) Add(p shape.Primitive) bool {
	if shape.IsNil(p) {
		r.addErr(fmt.Errorf("attach %T: %w", p, shape.ErrMalformed))
		return false
	}
	b := p.AsBase()
	var err error
	switch {
	case !b.Frame.IsValid() || b.Frame.Graph() != r.graph:
		err = fmt.Errorf("attach %T to %v: %w", p, b.Frame, frame.ErrInvalidFrame)
	case b.Layer < 0:
		err = fmt.Errorf("attach %T to layer %d: %w", p, b.Layer, ErrInvalidLayer)
	default:
		err = shape.Validate(p)
	}
	if err != nil {
		// a frame from a failed call was already recorded by the graph
		if b.Frame.Graph() != r.graph || b.Frame.ID() != frame.NoID {
			r.addErr(err)
		}
		return false
	}
	for len(r.layers) <= b.Layer {
		r.layers = append(r.layers, nil)
	}
	r.layers[b.Layer] = append(r.layers[b.Layer], p)
	return true
}

// Update advances the scene by dt: it clears the per-tick frame
// caches, applies the given parameters to the dynamic frames they
// name, and recomputes the geometry of every primitive. Dynamic
// frames without a parameter keep their last value.
func (r *Renderer) Update(dt float64, params map[string]float64) {
	r.elapsed += dt
	r.ticks++
	r.graph.Reset()
	n := r.graph.Apply(params)
	count := 0
	for _, layer := range r.layers {
		for _, p := range layer {
			shape.Calculate(p, r.Camera)
			count++
		}
	}
	slog.Debug("scene update", "tick", r.ticks, "dt", dt, "params", len(params), "frames", n, "primitives", count)
}

// Draw draws every layer in order onto the surface, each sorted by
// depth, using the geometry from the last [Renderer.Update].
func (r *Renderer) Draw(s surface.Surface) {
	s.Save()
	s.Translate(r.Origin[0], r.Origin[1])
	s.Scale(r.Zoom, r.Zoom)
	for _, layer := range r.layers {
		r.sorted = append(r.sorted[:0], layer...)
		slices.SortStableFunc(r.sorted, func(a, b shape.Primitive) int {
			return cmp.Compare(a.AsBase().Depth, b.AsBase().Depth)
		})
		for _, p := range r.sorted {
			shape.Draw(p, s, r.Camera)
		}
	}
	clear(r.sorted)
	s.Restore()
}
