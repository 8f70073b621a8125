// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the 2D drawing contract that scenes render
// through, along with [Context], the shared path and transform state
// machine that concrete surfaces embed, and [Recorder], a surface that
// records what was drawn.
//
// Sub-packages raster and svg provide image and SVG surfaces.
package surface

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Surface is a canvas-like 2D drawing target. Paths are built with
// BeginPath, MoveTo, LineTo, BezierCurveTo, Arc and ClosePath, and are
// then painted with Fill or Stroke. Coordinates are in pixels, mapped
// through the current transform, which Save and Restore push and pop
// together with the stroke settings.
//
// A Surface is never read back by the scene.
type Surface interface {

	// BeginPath discards the current path and starts a new one.
	BeginPath()

	// ClosePath closes the current sub-path back to its start point.
	ClosePath()

	// MoveTo starts a new sub-path at the given point.
	MoveTo(x, y float64)

	// LineTo adds a straight segment to the given point.
	LineTo(x, y float64)

	// BezierCurveTo adds a cubic bezier segment with the two given
	// control points ending at the given point.
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)

	// Arc adds a circular arc centered at (x, y) with radius r,
	// sweeping from angle a0 to angle a1 in radians. Increasing angles
	// run clockwise on screen, since y points down. If there is a
	// current point, a line joins it to the start of the arc.
	Arc(x, y, r, a0, a1 float64)

	// Fill fills the current path with the given paint.
	Fill(p Paint)

	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(w float64)

	// SetStrokeColor sets the stroke color.
	SetStrokeColor(c color.RGBA)

	// Stroke strokes the current path with the current width and color.
	Stroke()

	// Save pushes the current transform and stroke settings.
	Save()

	// Restore pops the state pushed by the matching Save.
	Restore()

	// Translate translates the current transform.
	Translate(x, y float64)

	// Scale scales the current transform.
	Scale(x, y float64)
}

// Paint describes a fill: a solid color, or a linear gradient
// when Gradient is non-nil.
type Paint struct {
	Color    color.RGBA
	Gradient *LinearGradient
}

// Solid returns a solid color paint.
func Solid(c color.RGBA) Paint {
	return Paint{Color: c}
}

// IsGradient returns whether the paint is a gradient.
func (p Paint) IsGradient() bool {
	return p.Gradient != nil
}

// Stop is one color stop of a gradient, at position Pos in [0, 1].
type Stop struct {
	Pos   float64
	Color color.RGBA
}

// LinearGradient is a linear color ramp between two points given in
// the coordinates of the path it fills.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

// NewLinear returns a two-stop gradient running from color a at
// (x0, y0) to color b at (x1, y1).
func NewLinear(x0, y0, x1, y1 float64, a, b color.RGBA) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1,
		Stops: []Stop{{0, a}, {1, b}}}
}

// At returns the color at position t along the gradient, clamped to
// the first and last stops. Colors are blended in RGB space.
func (g *LinearGradient) At(t float64) color.RGBA {
	switch len(g.Stops) {
	case 0:
		return color.RGBA{}
	case 1:
		return g.Stops[0].Color
	}
	if t <= g.Stops[0].Pos {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		s0, s1 := g.Stops[i-1], g.Stops[i]
		if t > s1.Pos {
			continue
		}
		d := s1.Pos - s0.Pos
		if d <= 0 {
			return s1.Color
		}
		return Blend(s0.Color, s1.Color, (t-s0.Pos)/d)
	}
	return g.Stops[len(g.Stops)-1].Color
}

// Blend returns the RGB blend of a and b at fraction t, with alpha
// interpolated linearly.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	ca := toColorful(a)
	cb := toColorful(b)
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	al := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.RGBA{r, g, bl, uint8(al + 0.5)}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the color as a #rrggbb string, ignoring alpha.
func Hex(c color.RGBA) string {
	return toColorful(c).Hex()
}
