// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/frame"
	"github.com/robobenjie/skifreeordie-sub000/surface"
)

// Circle is a flat disc lying in a plane of its frame, drawn as the
// ellipse it projects to.
type Circle struct {
	Base

	// Center is the center in frame coordinates.
	Center mgl64.Vec3

	// Radius is the radius in world units.
	Radius float64

	// Axis is the frame axis normal to the disc.
	Axis frame.Axis

	// center and the two world semi-diameters of the disc.
	center, u, v mgl64.Vec3
}

// NewCircle returns a circle in the XY plane of the given frame.
func NewCircle(f frame.Frame, center mgl64.Vec3, radius float64) *Circle {
	return &Circle{Base: Base{Frame: f}, Center: center, Radius: radius, Axis: frame.Z}
}

// planeAxes returns two unit vectors spanning the plane normal to
// the axis, in cyclic order.
func planeAxes(axis frame.Axis) (mgl64.Vec3, mgl64.Vec3) {
	switch axis {
	case frame.X:
		return frame.Y.Unit(), frame.Z.Unit()
	case frame.Y:
		return frame.Z.Unit(), frame.X.Unit()
	}
	return frame.X.Unit(), frame.Y.Unit()
}

// Corners returns the world corners of the square that bounds the
// disc, as of the last [Calculate].
func (c *Circle) Corners() [4]mgl64.Vec3 {
	return [4]mgl64.Vec3{
		c.center.Add(c.u).Add(c.v),
		c.center.Sub(c.u).Add(c.v),
		c.center.Sub(c.u).Sub(c.v),
		c.center.Add(c.u).Sub(c.v),
	}
}

func (c *Circle) calculate(cam camera.Camera) {
	w := c.Frame.World()
	pu, pv := planeAxes(c.Axis)
	c.center = w.Apply(c.Center)
	c.u = w.ApplyVector(pu.Mul(c.Radius))
	c.v = w.ApplyVector(pv.Mul(c.Radius))
	c.Depth = cam.Depth(c.center)
	// an edge-on disc projects to a line
	su, sv := cam.ProjectVector(c.u), cam.ProjectVector(c.v)
	c.Hidden = c.Radius <= 0 || math.Abs(cross2(su, sv)) < Epsilon
}

func (c *Circle) draw(s surface.Surface, cam camera.Camera) {
	s.BeginPath()
	ellipse(s, cam.Project(c.center), cam.ProjectVector(c.u), cam.ProjectVector(c.v))
	s.Fill(surface.Solid(c.Color))
}
