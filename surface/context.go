// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// Context holds the path and transform state shared by surfaces.
// Path points are transformed into device coordinates as they are
// added, so the accumulated [Context.Path] is ready to be painted.
// Concrete surfaces embed a Context and add Fill and Stroke.
type Context struct {

	// Path is the current path in device coordinates.
	Path Path

	// Transform is the current user to device transform.
	Transform f64.Aff3

	// LineWidth is the stroke width in user units.
	LineWidth float64

	// StrokeColor is the current stroke color.
	StrokeColor color.RGBA

	// Start is the start point of the current sub-path, in user units.
	Start f64.Vec2

	// Current is the current point, in user units.
	Current f64.Vec2

	// HasCurrent is whether there is a current point.
	HasCurrent bool

	stack []state
}

// NewContext returns a new context with an identity transform
// and a one pixel black stroke.
func NewContext() *Context {
	c := &Context{}
	c.Init()
	return c
}

// Init resets the context to its initial state.
func (c *Context) Init() {
	c.Path.Reset()
	c.Transform = Identity()
	c.LineWidth = 1
	c.StrokeColor = color.RGBA{A: 255}
	c.HasCurrent = false
	c.stack = c.stack[:0]
}

// TransformPoint returns the given user point in device coordinates.
func (c *Context) TransformPoint(x, y float64) (float64, float64) {
	return Apply(c.Transform, x, y)
}

// StrokeWidth returns the current line width in device units.
func (c *Context) StrokeWidth() float64 {
	return c.LineWidth * ScaleFactor(c.Transform)
}

// Depth returns the number of unmatched Save calls.
func (c *Context) Depth() int {
	return len(c.stack)
}

func (c *Context) BeginPath() {
	c.Path.Reset()
	c.HasCurrent = false
}

func (c *Context) ClosePath() {
	if c.HasCurrent {
		c.Path.Close()
		c.Current = c.Start
	}
}

func (c *Context) MoveTo(x, y float64) {
	c.Path.MoveTo(c.TransformPoint(x, y))
	c.Start = f64.Vec2{x, y}
	c.Current = c.Start
	c.HasCurrent = true
}

// LineTo adds a line to (x, y); without a current point it is
// equivalent to MoveTo(x, y).
func (c *Context) LineTo(x, y float64) {
	if !c.HasCurrent {
		c.MoveTo(x, y)
		return
	}
	c.Path.LineTo(c.TransformPoint(x, y))
	c.Current = f64.Vec2{x, y}
}

// BezierCurveTo adds a cubic bezier; without a current point it first
// moves to the first control point.
func (c *Context) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !c.HasCurrent {
		c.MoveTo(c1x, c1y)
	}
	ax, ay := c.TransformPoint(c1x, c1y)
	bx, by := c.TransformPoint(c2x, c2y)
	ex, ey := c.TransformPoint(x, y)
	c.Path.CubeTo(ax, ay, bx, by, ex, ey)
	c.Current = f64.Vec2{x, y}
}

func (c *Context) Arc(x, y, r, a0, a1 float64) {
	sx, sy := x+r*math.Cos(a0), y+r*math.Sin(a0)
	if c.HasCurrent {
		c.LineTo(sx, sy)
	} else {
		c.MoveTo(sx, sy)
	}
	arcCubes(x, y, r, a0, a1, c.BezierCurveTo)
}

func (c *Context) SetLineWidth(w float64) {
	c.LineWidth = w
}

func (c *Context) SetStrokeColor(col color.RGBA) {
	c.StrokeColor = col
}

func (c *Context) Save() {
	c.stack = append(c.stack, state{c.Transform, c.LineWidth, c.StrokeColor})
}

// Restore pops the last saved state; it does nothing when there is
// no saved state.
func (c *Context) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	s := c.stack[n-1]
	c.stack = c.stack[:n-1]
	c.Transform, c.LineWidth, c.StrokeColor = s.transform, s.lineWidth, s.strokeColor
}

func (c *Context) Translate(x, y float64) {
	c.Transform = Mul(c.Transform, f64.Aff3{1, 0, x, 0, 1, y})
}

func (c *Context) Scale(x, y float64) {
	c.Transform = Mul(c.Transform, f64.Aff3{x, 0, 0, 0, y, 0})
}

// DeviceGradient returns the gradient with its end points mapped
// through the current transform.
func (c *Context) DeviceGradient(g *LinearGradient) *LinearGradient {
	d := *g
	d.X0, d.Y0 = c.TransformPoint(g.X0, g.Y0)
	d.X1, d.Y1 = c.TransformPoint(g.X1, g.Y1)
	return &d
}
