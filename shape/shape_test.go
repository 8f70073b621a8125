// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/frame"
	"github.com/robobenjie/skifreeordie-sub000/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{200, 0, 0, 255}
	green = color.RGBA{0, 200, 0, 255}
	blue  = color.RGBA{0, 0, 200, 255}
)

func testCamera() camera.Camera {
	return camera.New(10, 0.5)
}

// render calculates and draws the primitive onto a new recorder.
func render(p Primitive) *surface.Recorder {
	cam := testCamera()
	rec := surface.NewRecorder()
	Calculate(p, cam)
	Draw(p, rec, cam)
	return rec
}

func TestValidate(t *testing.T) {
	f := frame.NewGraph().NewFrame()
	tests := []struct {
		name string
		p    Primitive
		ok   bool
	}{
		{"ball", &Ball{Base: Base{Frame: f}, Radius: 1}, true},
		{"line", &LineSegment{Points: []mgl64.Vec3{{}, {1, 0, 0}}}, true},
		{"short line", &LineSegment{Points: []mgl64.Vec3{{}}}, false},
		{"triangle", &Polygon{Points: []mgl64.Vec3{{}, {1, 0, 0}, {0, 1, 0}}}, true},
		{"short polygon", &Polygon{Points: []mgl64.Vec3{{}, {1, 0, 0}}}, false},
		{"profile", &CylinderProjection{Profile: []ProfilePoint{{0, 1}, {math.Pi, 1}}}, true},
		{"short profile", &CylinderProjection{Profile: []ProfilePoint{{0, 1}}}, false},
		{"unordered profile", &CylinderProjection{Profile: []ProfilePoint{{1, 1}, {0.5, 1}}}, false},
		{"repeated angle", &CylinderProjection{Profile: []ProfilePoint{{1, 1}, {1, 1}}}, false},
		{"profile out of range", &CylinderProjection{Profile: []ProfilePoint{{0, 1}, {7, 1}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.p)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMalformed)
			}
		})
	}
}

func TestMirrorLine(t *testing.T) {
	f := frame.NewGraph().NewFrame().Translate(0, 0, 1)
	l := &LineSegment{Base: Base{Frame: f, Color: red, Layer: 2},
		Points: []mgl64.Vec3{{1, 2, 3}, {4, 5, 6}}, Thickness: 0.1}
	m, err := Mirror(l, frame.Y)
	require.NoError(t, err)
	ml := m.(*LineSegment)
	assert.Equal(t, []mgl64.Vec3{{1, -2, 3}, {4, -5, 6}}, ml.Points)
	assert.Equal(t, f, ml.Frame)
	assert.Equal(t, red, ml.Color)
	assert.Equal(t, 0.1, ml.Thickness)
	// the original is untouched
	assert.Equal(t, []mgl64.Vec3{{1, 2, 3}, {4, 5, 6}}, l.Points)

	// the copy keeps none of the computed state of a drawn original
	render(l)
	require.True(t, l.Calculated())
	m, err = Mirror(l, frame.Y)
	require.NoError(t, err)
	ml = m.(*LineSegment)
	assert.False(t, ml.Calculated())
	assert.Nil(t, ml.WorldPoints())
	assert.Len(t, l.WorldPoints(), 2)
}

func TestDrawBeforeCalculate(t *testing.T) {
	f := frame.NewGraph().NewFrame()
	rec := surface.NewRecorder()
	for _, p := range []Primitive{
		&LineSegment{Base: Base{Frame: f, Color: red}, Points: []mgl64.Vec3{{}, {0, 1, 0}}, Thickness: 0.1},
		&Polygon{Base: Base{Frame: f, Color: red}, Points: []mgl64.Vec3{{}, {0, 1, 0}, {1, 1, 0}}},
	} {
		assert.NotPanics(t, func() { Draw(p, rec, testCamera()) })
	}
	assert.Empty(t, rec.Items)
}

func TestMirrorOthers(t *testing.T) {
	f := frame.NewGraph().NewFrame()
	p, err := Mirror(&Polygon{Base: Base{Frame: f}, Points: []mgl64.Vec3{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}}, frame.X)
	require.NoError(t, err)
	assert.Equal(t, []mgl64.Vec3{{-1, 1, 1}, {-2, 2, 2}, {-3, 3, 3}}, p.(*Polygon).Points)

	c, err := Mirror(&Circle{Base: Base{Frame: f}, Center: mgl64.Vec3{1, 2, 3}, Radius: 2, Axis: frame.Z}, frame.Z)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{1, 2, -3}, c.(*Circle).Center)
	assert.Equal(t, 2.0, c.(*Circle).Radius)
	assert.Equal(t, frame.Z, c.(*Circle).Axis)

	bs := &BodySegment{Base: Base{Frame: f, Color: red},
		A: Endpoint{Pos: mgl64.Vec3{0, 0.2, 1}, Radius: 0.1, Color: green, SkipCap: true},
		B: Endpoint{Pos: mgl64.Vec3{0, 0.3, 0}, Radius: 0.05}}
	b, err := Mirror(bs, frame.Y)
	require.NoError(t, err)
	mb := b.(*BodySegment)
	assert.Equal(t, mgl64.Vec3{0, -0.2, 1}, mb.A.Pos)
	assert.Equal(t, mgl64.Vec3{0, -0.3, 0}, mb.B.Pos)
	assert.Equal(t, 0.1, mb.A.Radius)
	assert.Equal(t, green, mb.A.Color)
	assert.True(t, mb.A.SkipCap)
	assert.False(t, mb.B.SkipCap)
	assert.Equal(t, red, mb.Color)
	assert.Equal(t, f, mb.Frame)
}

func TestMirrorUnsupported(t *testing.T) {
	for _, p := range []Primitive{&Ball{}, &Hemisphere{}, &CylinderProjection{}} {
		m, err := Mirror(p, frame.Y)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrMirrorUnsupported)
	}
}

func TestBall(t *testing.T) {
	f := frame.NewGraph().NewFrame().Translate(0, 1, 0)
	b := &Ball{Base: Base{Frame: f, Color: blue}, Radius: 0.5}
	rec := render(b)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, b.WorldCenter())
	assert.Equal(t, 0.0, b.Depth)
	fills := rec.Fills()
	require.Len(t, fills, 1)
	assert.Equal(t, blue, fills[0].Paint.Color)
	lo, hi := fills[0].Path.Bounds()
	assert.InDelta(t, 5, lo[0], 1e-9)
	assert.InDelta(t, 15, hi[0], 1e-9)

	b.Radius = 0
	rec = render(b)
	assert.True(t, b.Hidden)
	assert.Empty(t, rec.Items)
}

func TestCalculateNonFinite(t *testing.T) {
	f := frame.NewGraph().NewFrame()
	b := &Ball{Base: Base{Frame: f}, Center: mgl64.Vec3{math.NaN(), 0, 0}, Radius: 1}
	rec := render(b)
	assert.True(t, b.Hidden)
	assert.Empty(t, rec.Items)
}

func TestCircle(t *testing.T) {
	f := frame.NewGraph().NewFrame()
	c := NewCircle(f, mgl64.Vec3{}, 1)
	c.Color = green
	rec := render(c)
	assert.False(t, c.Hidden)
	fills := rec.Fills()
	require.Len(t, fills, 1)
	var cmds []float64
	fills[0].Path.Scan(func(cmd float64, pts []float64) { cmds = append(cmds, cmd) })
	assert.Equal(t, []float64{surface.MoveTo, surface.CubeTo, surface.CubeTo, surface.CubeTo, surface.CubeTo, surface.Close}, cmds)
	// the unit square projects to x in [-10, 10] and y in [-5, 5]
	// pixels, and the ellipse touches each side
	lo, hi := fills[0].Path.Bounds()
	assert.InDelta(t, -10, lo[0], 1e-9)
	assert.InDelta(t, 10, hi[0], 1e-9)
	assert.InDelta(t, -5, lo[1], 1e-9)
	assert.InDelta(t, 5, hi[1], 1e-9)
	assert.Len(t, c.Corners(), 4)

	// a disc whose plane contains the view direction is edge on
	c.Axis = frame.Y
	rec = render(c)
	assert.True(t, c.Hidden)
	assert.Empty(t, rec.Items)
}

func TestLineSegment(t *testing.T) {
	f := frame.NewGraph().NewFrame()
	l := &LineSegment{Base: Base{Frame: f, Color: red},
		Points: []mgl64.Vec3{{0, 0, 0}, {0, 1, 0}, {2, 1, 0}}, Thickness: 0.2}
	rec := render(l)
	assert.InDelta(t, 2.0/3.0, l.Depth, 1e-12)
	require.Len(t, rec.Items, 1)
	st := rec.Items[0].(*surface.StrokeItem)
	assert.Equal(t, red, st.Color)
	assert.InDelta(t, 2, st.Width, 1e-12)
	assert.Equal(t, "M0 0 L10 0 L10 10", st.Path.String())
}

func TestPolygon(t *testing.T) {
	f := frame.NewGraph().NewFrame()
	p := &Polygon{Base: Base{Frame: f, Color: green},
		Points: []mgl64.Vec3{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}}}
	rec := render(p)
	assert.InDelta(t, 1.0/3.0, p.Depth, 1e-12)
	fills := rec.Fills()
	require.Len(t, fills, 1)
	assert.Equal(t, "M0 -10 L10 -10 L10 0 Z", fills[0].Path.String())
}

func TestBodySegment(t *testing.T) {
	f := frame.NewGraph().NewFrame()
	bs := &BodySegment{Base: Base{Frame: f, Color: red},
		A: Endpoint{Pos: mgl64.Vec3{0, 0, 0}, Radius: 0.2},
		B: Endpoint{Pos: mgl64.Vec3{0, 2, 0}, Radius: 0.1}}
	rec := render(bs)
	require.Len(t, rec.Items, 3)
	fills := rec.Fills()
	assert.False(t, fills[2].Paint.IsGradient())
	// trapezoid sides are offset along the screen perpendicular
	lo, hi := fills[2].Path.Bounds()
	assert.InDelta(t, -2, lo[1], 1e-9)
	assert.InDelta(t, 2, hi[1], 1e-9)
	assert.InDelta(t, 20, hi[0], 1e-9)

	bs.B.Color = blue
	bs.A.SkipCap = true
	rec = render(bs)
	fills = rec.Fills()
	require.Len(t, fills, 2)
	assert.Equal(t, blue, fills[0].Paint.Color)
	require.True(t, fills[1].Paint.IsGradient())
	g := fills[1].Paint.Gradient
	assert.Equal(t, red, g.Stops[0].Color)
	assert.Equal(t, blue, g.Stops[1].Color)
	assert.Equal(t, 20.0, g.X1)

	// ends that coincide on screen draw nothing
	bs.B.Pos = mgl64.Vec3{1, 0, 0.5}
	rec = render(bs)
	assert.True(t, bs.Hidden)
	assert.Empty(t, rec.Items)
}

func TestHemisphere(t *testing.T) {
	g := frame.NewGraph()
	f := g.NewFrame()
	h := &Hemisphere{Base: Base{Frame: f, Color: red}, Radius: 1, Lift: 1.2}
	rec := render(h)
	// up is Z, whose component across the view direction is 1/√1.25
	assert.InDelta(t, 1-1/math.Sqrt(1.25), h.Squash(), 1e-12)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, h.WorldTop())
	// the top is nearer than the center, so the rim goes first
	assert.Equal(t, []color.RGBA{Shade(red, RimShade), red}, rec.Colors())

	flipped := &Hemisphere{Base: Base{Frame: f.RotateAboutX(math.Pi), Color: red}, Radius: 1, Lift: 1.2, RimColor: blue}
	rec = render(flipped)
	assert.Equal(t, []color.RGBA{red, blue}, rec.Colors())

	// seen along the camera direction the base is round
	cam := testCamera()
	tc := cam.ToCamera()
	along := f.RotateAboutY(math.Atan2(tc[0], tc[2]))
	round := &Hemisphere{Base: Base{Frame: along, Color: red}, Radius: 1}
	Calculate(round, cam)
	assert.InDelta(t, 1, round.Squash(), 1e-9)

	// no lift, no rim
	rec = render(round)
	assert.Len(t, rec.Items, 1)
}

func TestShade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	s := Shade(c, 0.5)
	assert.Less(t, s.R, c.R)
	assert.Less(t, s.G, c.G)
	assert.Equal(t, c.A, s.A)
	assert.Equal(t, c, Shade(c, 0))
}

func TestIsNil(t *testing.T) {
	var l *LineSegment
	assert.True(t, IsNil(l))
	assert.True(t, IsNil(nil))
	assert.False(t, IsNil(&Ball{}))
	_, err := Mirror(l, frame.X)
	assert.ErrorIs(t, err, ErrMalformed)
}
