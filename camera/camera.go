// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the fixed oblique projection used to map
// world points onto the drawing surface, and the matching depth key.
//
// World coordinates are x downhill, y across the slope and z up.
// The projection is a one-point oblique shear, not a perspective:
// there is no foreshortening with distance.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultYPerX is the screen-y shear per unit of downhill x,
	// controlling the apparent downward tilt of the camera.
	// It is a tuned visual constant.
	DefaultYPerX = 0.5

	// DefaultPixelsPerMeter is the default world to screen scale.
	DefaultPixelsPerMeter = 20.0
)

// Camera is the fixed oblique camera.
type Camera struct {

	// PixelsPerMeter scales world units to screen pixels.
	PixelsPerMeter float64 `default:"20"`

	// YPerX is the screen-y shift per unit of world x, in world units.
	YPerX float64 `default:"0.5"`
}

// New returns a camera with the given scale and tilt.
func New(pixelsPerMeter, yPerX float64) Camera {
	return Camera{PixelsPerMeter: pixelsPerMeter, YPerX: yPerX}
}

// Default returns a camera with the default scale and tilt.
func Default() Camera {
	return New(DefaultPixelsPerMeter, DefaultYPerX)
}

// Defaults sets default values for any zero fields.
func (c *Camera) Defaults() {
	if c.PixelsPerMeter == 0 {
		c.PixelsPerMeter = DefaultPixelsPerMeter
	}
	if c.YPerX == 0 {
		c.YPerX = DefaultYPerX
	}
}

// Project maps a world point to a screen point in pixels.
func (c Camera) Project(p mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{
		p[1] * c.PixelsPerMeter,
		-p[2]*c.PixelsPerMeter + p[0]*c.YPerX*c.PixelsPerMeter,
	}
}

// ProjectVector maps a world direction to a screen direction in pixels.
// The projection is linear, so this is the same as Project; it is kept
// separate to make intent clear at call sites.
func (c Camera) ProjectVector(v mgl64.Vec3) mgl64.Vec2 {
	return c.Project(v)
}

// Depth returns the painter's algorithm depth key of a world point.
// Larger keys are nearer to the viewer and are drawn later.
func (c Camera) Depth(p mgl64.Vec3) float64 {
	return p[0] + p[2]*c.YPerX
}

// ToCamera returns the unit vector pointing from the scene toward
// the viewer. It is the direction that the projection collapses to a
// single screen point, and the gradient direction of [Camera.Depth].
func (c Camera) ToCamera() mgl64.Vec3 {
	n := math.Sqrt(1 + c.YPerX*c.YPerX)
	return mgl64.Vec3{1 / n, 0, c.YPerX / n}
}

// Scale returns the given world length in pixels.
func (c Camera) Scale(length float64) float64 {
	return length * c.PixelsPerMeter
}
