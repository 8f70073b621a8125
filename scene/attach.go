// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/frame"
	"github.com/robobenjie/skifreeordie-sub000/shape"
)

// attach adds p and returns it, or returns nil if it was rejected.
func attach[P shape.Primitive](r *Renderer, p P) P {
	if !r.Add(p) {
		var zero P
		return zero
	}
	return p
}

func base(f frame.Frame, c color.RGBA, layer int) shape.Base {
	return shape.Base{Frame: f, Color: c, Layer: layer}
}

// Ball attaches a ball centered at the given point of frame f.
func (r *Renderer) Ball(f frame.Frame, center mgl64.Vec3, radius float64, c color.RGBA, layer int) *shape.Ball {
	return attach(r, &shape.Ball{Base: base(f, c, layer), Center: center, Radius: radius})
}

// Circle attaches a flat disc in the XY plane of frame f.
func (r *Renderer) Circle(f frame.Frame, center mgl64.Vec3, radius float64, c color.RGBA, layer int) *shape.Circle {
	ci := shape.NewCircle(f, center, radius)
	ci.Base = base(f, c, layer)
	return attach(r, ci)
}

// LineSegment attaches a polyline through the given points of
// frame f, stroked with the given world thickness.
func (r *Renderer) LineSegment(f frame.Frame, points []mgl64.Vec3, thickness float64, c color.RGBA, layer int) *shape.LineSegment {
	return attach(r, &shape.LineSegment{Base: base(f, c, layer), Points: points, Thickness: thickness})
}

// BodySegment attaches a tapered capsule between two endpoints of
// frame f. Endpoints without their own color use c.
func (r *Renderer) BodySegment(f frame.Frame, a, b shape.Endpoint, c color.RGBA, layer int) *shape.BodySegment {
	return attach(r, &shape.BodySegment{Base: base(f, c, layer), A: a, B: b})
}

// Polygon attaches a filled polygon through the given points of frame f.
func (r *Renderer) Polygon(f frame.Frame, points []mgl64.Vec3, c color.RGBA, layer int) *shape.Polygon {
	return attach(r, &shape.Polygon{Base: base(f, c, layer), Points: points})
}

// Hemisphere attaches a dome on the XY plane of frame f with a base
// rim of radius lift. A zero rim color shades the dome color.
func (r *Renderer) Hemisphere(f frame.Frame, radius, lift float64, c, rim color.RGBA, layer int) *shape.Hemisphere {
	return attach(r, &shape.Hemisphere{Base: base(f, c, layer), Radius: radius, Lift: lift, RimColor: rim})
}

// CylinderProjection attaches a band wrapped around the Z axis of
// frame f, between the constant height baseFraction and the given
// profile, on a cylinder of the given height whose elliptical radii
// run from bottom to top.
func (r *Renderer) CylinderProjection(f frame.Frame, top, bottom mgl64.Vec2, height float64, profile []shape.ProfilePoint, baseFraction float64, c color.RGBA, layer int) *shape.CylinderProjection {
	return attach(r, &shape.CylinderProjection{Base: base(f, c, layer),
		TopRadius: top, BottomRadius: bottom, Height: height,
		Profile: profile, BaseFraction: baseFraction})
}

// Mirror attaches a copy of p reflected about the given axis of its
// frame, in the given layer. Mirroring an unsupported primitive type
// is an authoring error, for which it returns nil.
func (r *Renderer) Mirror(p shape.Primitive, axis frame.Axis, layer int) shape.Primitive {
	if shape.IsNil(p) {
		// p comes from a rejected attach, which was already recorded
		return nil
	}
	m, err := shape.Mirror(p, axis)
	if err != nil {
		r.addErr(err)
		return nil
	}
	m.AsBase().Layer = layer
	if !r.Add(m) {
		return nil
	}
	return m
}

// MirrorAboutX attaches a copy of p with its local x negated.
func (r *Renderer) MirrorAboutX(p shape.Primitive, layer int) shape.Primitive {
	return r.Mirror(p, frame.X, layer)
}

// MirrorAboutY attaches a copy of p with its local y negated.
func (r *Renderer) MirrorAboutY(p shape.Primitive, layer int) shape.Primitive {
	return r.Mirror(p, frame.Y, layer)
}

// MirrorAboutZ attaches a copy of p with its local z negated.
func (r *Renderer) MirrorAboutZ(p shape.Primitive, layer int) shape.Primitive {
	return r.Mirror(p, frame.Z, layer)
}
