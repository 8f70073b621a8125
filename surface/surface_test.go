// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestAffine(t *testing.T) {
	m := Mul(f64.Aff3{1, 0, 10, 0, 1, 20}, f64.Aff3{2, 0, 0, 0, 2, 0})
	x, y := Apply(m, 1, 1)
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 22.0, y)
	assert.Equal(t, 2.0, ScaleFactor(m))
	assert.Equal(t, Identity(), Mul(Identity(), Identity()))
}

func TestContextTransformStack(t *testing.T) {
	c := NewContext()
	c.Save()
	c.Translate(100, 50)
	c.Scale(2, 2)
	c.SetLineWidth(3)
	assert.Equal(t, 6.0, c.StrokeWidth())
	x, y := c.TransformPoint(1, -1)
	assert.Equal(t, 102.0, x)
	assert.Equal(t, 48.0, y)
	assert.Equal(t, 1, c.Depth())

	c.Restore()
	assert.Equal(t, 0, c.Depth())
	assert.Equal(t, Identity(), c.Transform)
	assert.Equal(t, 1.0, c.StrokeWidth())

	// unmatched restore is ignored
	c.Restore()
	assert.Equal(t, Identity(), c.Transform)
}

func TestPathCommands(t *testing.T) {
	c := NewContext()
	c.Translate(10, 0)
	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(1, 0)
	c.BezierCurveTo(1, 1, 2, 1, 2, 0)
	c.ClosePath()
	assert.Equal(t, "M10 0 L11 0 C11 1 12 1 12 0 Z", c.Path.String())

	c.BeginPath()
	assert.True(t, c.Path.Empty())
	// LineTo without a current point moves
	c.LineTo(5, 5)
	assert.Equal(t, "M15 5", c.Path.String())
}

func TestArc(t *testing.T) {
	c := NewContext()
	c.BeginPath()
	c.Arc(0, 0, 10, 0, 2*math.Pi)
	c.ClosePath()
	lines := c.Path.Flatten(0.01)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Closed)
	for _, p := range lines[0].Points {
		assert.InDelta(t, 10, math.Hypot(p[0], p[1]), 0.01)
	}
	lo, hi := c.Path.Bounds()
	assert.InDelta(t, -10, lo[0], 0.6)
	assert.InDelta(t, 10, hi[1], 0.6)

	// arcs join the current point with a line
	c.BeginPath()
	c.MoveTo(-5, 0)
	c.Arc(0, 0, 1, 0, math.Pi/2)
	assert.Equal(t, LineTo, c.Path[3])
}

func TestGradient(t *testing.T) {
	g := NewLinear(0, 0, 10, 0, red, blue)
	assert.Equal(t, red, g.At(-1))
	assert.Equal(t, blue, g.At(2))
	mid := g.At(0.5)
	assert.Equal(t, uint8(128), mid.R)
	assert.Equal(t, uint8(0), mid.G)
	assert.Equal(t, uint8(128), mid.B)
	assert.Equal(t, uint8(255), mid.A)
	assert.Equal(t, color.RGBA{}, (&LinearGradient{}).At(0.5))
	assert.Equal(t, "#ff0000", Hex(red))
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	var s Surface = r
	s.Save()
	s.Scale(2, 2)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(1, 1)
	s.SetStrokeColor(blue)
	s.SetLineWidth(0.5)
	s.Stroke()
	s.BeginPath()
	s.Arc(0, 0, 1, 0, 2*math.Pi)
	s.Fill(Paint{Gradient: NewLinear(0, 0, 1, 0, red, blue)})
	s.Restore()

	require.Len(t, r.Items, 2)
	st := r.Items[0].(*StrokeItem)
	assert.Equal(t, 1.0, st.Width)
	assert.Equal(t, "M0 0 L2 2", st.Path.String())
	fl := r.Fills()
	require.Len(t, fl, 1)
	assert.Equal(t, 2.0, fl[0].Paint.Gradient.X1)
	assert.Equal(t, []color.RGBA{blue, red}, r.Colors())
	assert.Equal(t, 0, r.Depth())

	r.Reset()
	assert.Empty(t, r.Items)
}
