// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides the drawable primitives of a scene: balls,
// circles, line segments, tapered body segments, polygons, domed
// hemispheres and wrapped cylinder projections. Each primitive is
// anchored to a [frame.Frame] and holds its geometry in that frame's
// local coordinates.
//
// The set of primitives is closed: [Calculate], [Draw], [Validate] and
// [Mirror] switch over every type.
package shape

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/base/errors"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/frame"
	"github.com/robobenjie/skifreeordie-sub000/surface"
)

var (
	// ErrMirrorUnsupported is returned when mirroring a primitive
	// type that cannot be mirrored.
	ErrMirrorUnsupported = errors.New("shape: mirroring not supported")

	// ErrMalformed is returned for primitives whose geometry is
	// invalid, such as a polygon with fewer than three points.
	ErrMalformed = errors.New("shape: malformed primitive")
)

// Epsilon is the screen length in pixels below which geometry is
// treated as degenerate.
const Epsilon = 1e-6

// Base holds the properties common to all primitives.
type Base struct {

	// Frame is the frame the geometry is expressed in.
	// It is shared with other primitives and not owned.
	Frame frame.Frame

	// Color is the fill or stroke color.
	Color color.RGBA

	// Layer is the index of the layer the primitive is drawn in.
	Layer int

	// Depth is the painter's depth key computed by [Calculate].
	// Larger keys are drawn later.
	Depth float64

	// Hidden is set by [Calculate] when the geometry is degenerate
	// for this tick, in which case nothing is drawn.
	Hidden bool

	// calculated is set by the first [Calculate].
	calculated bool
}

// reset clears the state computed by [Calculate].
func (b *Base) reset() {
	b.Depth = 0
	b.Hidden = false
	b.calculated = false
}

// Calculated returns whether [Calculate] has run since the primitive
// was created.
func (b *Base) Calculated() bool {
	return b.calculated
}

// AsBase returns the [Base] of the primitive.
func (b *Base) AsBase() *Base {
	return b
}

// Primitive is a union interface for the primitive types: [*Ball],
// [*Circle], [*LineSegment], [*BodySegment], [*Polygon],
// [*Hemisphere] and [*CylinderProjection].
type Primitive interface {
	AsBase() *Base
	isPrimitive()
}

func (*Ball) isPrimitive()               {}
func (*Circle) isPrimitive()             {}
func (*LineSegment) isPrimitive()        {}
func (*BodySegment) isPrimitive()        {}
func (*Polygon) isPrimitive()            {}
func (*Hemisphere) isPrimitive()         {}
func (*CylinderProjection) isPrimitive() {}

// IsNil returns whether p is nil or a nil pointer of one of the
// primitive types.
func IsNil(p Primitive) bool {
	switch x := p.(type) {
	case *Ball:
		return x == nil
	case *Circle:
		return x == nil
	case *LineSegment:
		return x == nil
	case *BodySegment:
		return x == nil
	case *Polygon:
		return x == nil
	case *Hemisphere:
		return x == nil
	case *CylinderProjection:
		return x == nil
	}
	return true
}

// Validate returns an [ErrMalformed] error if the local geometry of
// the primitive cannot be drawn regardless of its frame.
func Validate(p Primitive) error {
	var msg string
	switch x := p.(type) {
	case *LineSegment:
		if len(x.Points) < 2 {
			msg = fmt.Sprintf("line segment needs at least 2 points, has %d", len(x.Points))
		}
	case *Polygon:
		if len(x.Points) < 3 {
			msg = fmt.Sprintf("polygon needs at least 3 points, has %d", len(x.Points))
		}
	case *CylinderProjection:
		return validateProfile(x.Profile)
	case *Ball, *Circle, *BodySegment, *Hemisphere:
	default:
		msg = fmt.Sprintf("unknown primitive %T", p)
	}
	if msg != "" {
		return fmt.Errorf("%w: %s", ErrMalformed, msg)
	}
	return nil
}

// Calculate recomputes the world geometry, depth key and hidden state
// of the primitive from the current world transform of its frame.
func Calculate(p Primitive, cam camera.Camera) {
	b := p.AsBase()
	b.Hidden = false
	b.calculated = true
	switch x := p.(type) {
	case *Ball:
		x.calculate(cam)
	case *Circle:
		x.calculate(cam)
	case *LineSegment:
		x.calculate(cam)
	case *BodySegment:
		x.calculate(cam)
	case *Polygon:
		x.calculate(cam)
	case *Hemisphere:
		x.calculate(cam)
	case *CylinderProjection:
		x.calculate(cam)
	}
	if math.IsNaN(b.Depth) || math.IsInf(b.Depth, 0) {
		b.Hidden = true
	}
}

// Draw draws the primitive onto the surface using the geometry from
// the last [Calculate]. Hidden primitives, and those never calculated,
// draw nothing.
func Draw(p Primitive, s surface.Surface, cam camera.Camera) {
	if b := p.AsBase(); b.Hidden || !b.calculated {
		return
	}
	switch x := p.(type) {
	case *Ball:
		x.draw(s, cam)
	case *Circle:
		x.draw(s, cam)
	case *LineSegment:
		x.draw(s, cam)
	case *BodySegment:
		x.draw(s, cam)
	case *Polygon:
		x.draw(s, cam)
	case *Hemisphere:
		x.draw(s, cam)
	case *CylinderProjection:
		x.draw(s, cam)
	}
}

// toWorld returns the given local points in world coordinates,
// reusing dst.
func toWorld(dst []mgl64.Vec3, f frame.Frame, pts []mgl64.Vec3) []mgl64.Vec3 {
	w := f.World()
	dst = dst[:0]
	for _, p := range pts {
		dst = append(dst, w.Apply(p))
	}
	return dst
}

// meanDepth returns the mean depth key of the given world points.
func meanDepth(cam camera.Camera, pts []mgl64.Vec3) float64 {
	if len(pts) == 0 {
		return 0
	}
	d := 0.0
	for _, p := range pts {
		d += cam.Depth(p)
	}
	return d / float64(len(pts))
}

func finite(v mgl64.Vec2) bool {
	return !math.IsNaN(v[0]) && !math.IsNaN(v[1]) && !math.IsInf(v[0], 0) && !math.IsInf(v[1], 0)
}

func moveTo(s surface.Surface, p mgl64.Vec2) { s.MoveTo(p[0], p[1]) }

func lineTo(s surface.Surface, p mgl64.Vec2) { s.LineTo(p[0], p[1]) }

func curveTo(s surface.Surface, c1, c2, p mgl64.Vec2) {
	s.BezierCurveTo(c1[0], c1[1], c2[0], c2[1], p[0], p[1])
}

// disc draws a filled circle.
func disc(s surface.Surface, c mgl64.Vec2, r float64, col color.RGBA) {
	s.BeginPath()
	s.Arc(c[0], c[1], r, 0, 2*math.Pi)
	s.ClosePath()
	s.Fill(surface.Solid(col))
}
