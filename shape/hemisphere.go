// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/surface"
)

// RimShade is how far toward black the default rim color of a
// [Hemisphere] is blended from its dome color.
const RimShade = 0.3

// Hemisphere is a dome of the given radius sitting on the XY plane of
// its frame with its top on the frame's +Z axis, such as a helmet.
// It is drawn as the dome silhouette and a flat rim ellipse of radius
// Lift around its base.
type Hemisphere struct {
	Base

	// Radius is the dome radius in world units.
	Radius float64

	// Lift is the radius of the base rim in world units.
	Lift float64

	// RimColor is the rim color. When zero, the rim is a darker
	// shade of the dome color.
	RimColor color.RGBA

	center, top, up mgl64.Vec3
	squash          float64
}

// Squash returns the ratio of the minor to the major axis of the
// projected base, as of the last [Calculate]. A dome seen from
// straight along the camera direction has a squash of 1.
func (h *Hemisphere) Squash() float64 {
	return h.squash
}

// WorldTop returns the world position of the top of the dome
// from the last [Calculate].
func (h *Hemisphere) WorldTop() mgl64.Vec3 {
	return h.top
}

// Rim returns the color of the rim.
func (h *Hemisphere) Rim() color.RGBA {
	if h.RimColor != (color.RGBA{}) {
		return h.RimColor
	}
	return Shade(h.Color, RimShade)
}

// Shade returns the color blended toward black by the given fraction
// in the perceptual Lab space, keeping alpha.
func Shade(c color.RGBA, f float64) color.RGBA {
	cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := cc.BlendLab(colorful.Color{}, f).Clamped().RGB255()
	return color.RGBA{r, g, b, c.A}
}

func (h *Hemisphere) calculate(cam camera.Camera) {
	w := h.Frame.World()
	h.center = w.Apply(mgl64.Vec3{})
	h.top = w.Apply(mgl64.Vec3{0, 0, h.Radius})
	h.up = w.ApplyVector(mgl64.Vec3{0, 0, 1})
	h.Depth = cam.Depth(h.center)
	// the apparent tilt of the base is the part of the up axis that
	// is perpendicular to the view direction
	h.squash = 1 - h.up.Cross(cam.ToCamera()).Len()
	h.Hidden = h.Radius <= 0
}

// axes returns the screen major and minor unit directions of the base
// ellipse; the minor axis points toward the top of the dome.
func (h *Hemisphere) axes(cam camera.Camera) (major, minor mgl64.Vec2) {
	pu := cam.ProjectVector(h.up)
	if pu.Len() < Epsilon {
		// looking straight down the axis: the base is a circle
		return mgl64.Vec2{1, 0}, mgl64.Vec2{0, -1}
	}
	minor = pu.Normalize()
	return perp(minor), minor
}

func (h *Hemisphere) draw(s surface.Surface, cam camera.Camera) {
	c := cam.Project(h.center)
	major, minor := h.axes(cam)
	if cam.Depth(h.center) > cam.Depth(h.top) {
		h.drawDome(s, cam, c, major, minor)
		h.drawRim(s, cam, c, major, minor)
		return
	}
	h.drawRim(s, cam, c, major, minor)
	h.drawDome(s, cam, c, major, minor)
}

// drawDome draws the silhouette: the half circle on the side of the
// top, closed by the far half of the base ellipse.
func (h *Hemisphere) drawDome(s surface.Surface, cam camera.Camera, c, major, minor mgl64.Vec2) {
	r := cam.Scale(h.Radius)
	a := math.Atan2(major[1], major[0])
	s.BeginPath()
	// from +major through +minor to -major
	sweep := math.Pi
	if cross2(major, minor) < 0 {
		sweep = -math.Pi
	}
	s.Arc(c[0], c[1], r, a, a+sweep)
	ellipseQuarters(s, c, major.Mul(-r), minor.Mul(-r*h.squash), 2)
	s.ClosePath()
	s.Fill(surface.Solid(h.Color))
}

// drawRim draws the flat base rim.
func (h *Hemisphere) drawRim(s surface.Surface, cam camera.Camera, c, major, minor mgl64.Vec2) {
	r := cam.Scale(h.Lift)
	if r <= 0 {
		return
	}
	s.BeginPath()
	ellipse(s, c, major.Mul(r), minor.Mul(r*h.squash))
	s.Fill(surface.Solid(h.Rim()))
}
