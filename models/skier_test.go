// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/config"
	"github.com/robobenjie/skifreeordie-sub000/scene"
	"github.com/robobenjie/skifreeordie-sub000/shape"
	"github.com/robobenjie/skifreeordie-sub000/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkier(t *testing.T) (*scene.Renderer, *Skier) {
	r := scene.NewRenderer(camera.Default())
	sk, err := NewSkier(r, DefaultOptions())
	require.NoError(t, err)
	return r, sk
}

func TestSkierVariants(t *testing.T) {
	r, sk := newSkier(t)
	assert.Equal(t, 4, r.Layers())

	kinds := map[string]int{}
	for l := range r.Layers() {
		for _, p := range r.Primitives(l) {
			switch p.(type) {
			case *shape.Ball:
				kinds["ball"]++
			case *shape.Circle:
				kinds["circle"]++
			case *shape.LineSegment:
				kinds["line"]++
			case *shape.BodySegment:
				kinds["body"]++
			case *shape.Polygon:
				kinds["polygon"]++
			case *shape.Hemisphere:
				kinds["hemisphere"]++
			case *shape.CylinderProjection:
				kinds["cylinder"]++
			}
		}
	}
	assert.Equal(t, map[string]int{
		"ball": 5, "circle": 5, "line": 4, "body": 9,
		"polygon": 1, "hemisphere": 1, "cylinder": 1,
	}, kinds)
	assert.NotNil(t, sk.Helmet)
	assert.NotNil(t, sk.Visor)
	assert.NotNil(t, sk.Goggles[1])
	assert.NotNil(t, sk.Skis[1])
}

func TestSkierParams(t *testing.T) {
	r, sk := newSkier(t)
	for _, name := range Params() {
		assert.Equal(t, 1, r.Graph().Set(sk.Param(name), 0.1), name)
	}
	assert.Equal(t, sk.Root.ID(), r.Frame("skier").ID())
	assert.Equal(t, sk.Torso.ID(), r.Frame(ParamLean).ID())
	assert.NoError(t, r.Err())
}

func TestSkierPoseKeepsSkisFlat(t *testing.T) {
	r, sk := newSkier(t)
	for _, crouch := range []float64{0, 0.5, 1} {
		r.Update(0.1, sk.Pose(crouch))
		left := sk.Skis[0].WorldPoints()
		right := sk.Skis[1].WorldPoints()
		require.Len(t, left, 3)
		require.Len(t, right, 3)
		for i := range 2 {
			assert.InDelta(t, 0, left[i][2], 1e-9, "crouch %g", crouch)
			assert.InDelta(t, -left[i][1], right[i][1], 1e-9)
		}
		assert.InDelta(t, left[1][0]-left[0][0], 2*skiHalf, 1e-9)
	}
	hips := sk.Hips.ToWorld(mgl64.Vec3{})
	assert.InDelta(t, 0.05+(thighLength+shinLength)*math.Cos(1), hips[2], 1e-9)
}

func TestSkierHeading(t *testing.T) {
	r, sk := newSkier(t)
	params := sk.Pose(0)
	params[ParamHeading] = math.Pi / 2
	r.Update(0, params)
	left := sk.Skis[0].WorldPoints()
	// the skis now run across the slope
	assert.InDelta(t, 2*skiHalf, left[1][1]-left[0][1], 1e-9)
	assert.InDelta(t, left[0][0], left[1][0], 1e-9)
}

func TestSkierDraw(t *testing.T) {
	r, sk := newSkier(t)
	rec := surface.NewRecorder()
	params := sk.Pose(0.3)
	params[ParamLook] = 0.4
	params[ParamShoulderL] = -0.8
	r.Update(1.0/30, params)
	r.Draw(rec)
	require.NotEmpty(t, rec.Items)
	for _, it := range rec.Items {
		var path surface.Path
		switch x := it.(type) {
		case *surface.FillItem:
			path = x.Path
		case *surface.StrokeItem:
			path = x.Path
		}
		for _, v := range path {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		}
	}
	// the shadow layer is drawn first
	first, ok := rec.Items[0].(*surface.FillItem)
	require.True(t, ok)
	assert.Equal(t, sk.Colors.Shadow, first.Paint.Color)
}

func TestSkierPrefixAndErrors(t *testing.T) {
	r := scene.NewRenderer(camera.Default())
	opts := DefaultOptions()
	opts.Prefix = "a_"
	opts.Layers.Body = -1
	_, err := NewSkier(r, opts)
	assert.ErrorIs(t, err, scene.ErrInvalidLayer)

	opts = DefaultOptions()
	opts.Prefix = "b_"
	opts.Position = mgl64.Vec3{3, 1, 0}
	sk, err := NewSkier(r, opts)
	require.NoError(t, err)
	assert.Error(t, r.Err())
	assert.Equal(t, "b_lean", sk.Param(ParamLean))
	assert.Equal(t, sk.Root.ID(), r.Frame("b_skier").ID())
	r.Update(0, nil)
	assert.InDelta(t, 3, sk.Root.ToWorld(mgl64.Vec3{})[0], 1e-12)
}

func TestOptionsFrom(t *testing.T) {
	s := config.Defaults()
	opts, err := OptionsFrom(s)
	require.NoError(t, err)
	assert.Equal(t, Layers{Shadow: 0, Skis: 1, Body: 2, Detail: 3}, opts.Layers)
	jacket, _ := s.Color("jacket")
	assert.Equal(t, jacket, opts.Colors.Jacket)

	delete(s.Palette, "visor")
	_, err = OptionsFrom(s)
	assert.ErrorIs(t, err, config.ErrUnknownColor)

	s = config.Defaults()
	s.Layers = []string{"body"}
	_, err = OptionsFrom(s)
	assert.ErrorIs(t, err, config.ErrUnknownLayer)
}

func TestSkierMirroredLegs(t *testing.T) {
	r, sk := newSkier(t)
	r.Update(0, sk.Pose(0.5))
	var left, right []*shape.BodySegment
	for _, p := range r.Primitives(sk.Layers.Body) {
		if bs, ok := p.(*shape.BodySegment); ok && bs.A.Pos[0] == 0 && bs.A.Pos[2] == 0 {
			if bs.A.Pos[1] > 0 && bs.B.Pos[1] > 0 {
				left = append(left, bs)
			} else if bs.A.Pos[1] < 0 && bs.B.Pos[1] < 0 {
				right = append(right, bs)
			}
		}
	}
	// thigh and shin on each side
	require.Len(t, left, 2)
	require.Len(t, right, 2)
	for i, l := range left {
		m := right[i]
		assert.Equal(t, l.A.Radius, m.A.Radius)
		assert.Equal(t, l.B.Radius, m.B.Radius)
		assert.Equal(t, l.A.SkipCap, m.A.SkipCap)
		assert.Equal(t, l.B.Color, m.B.Color)
		assert.Greater(t, m.A.Radius, 0.0)

		lrec, mrec := surface.NewRecorder(), surface.NewRecorder()
		shape.Draw(l, lrec, r.Camera)
		shape.Draw(m, mrec, r.Camera)
		lf, mf := lrec.Fills(), mrec.Fills()
		require.Len(t, mf, len(lf))
		for j := range lf {
			llo, lhi := lf[j].Path.Bounds()
			mlo, mhi := mf[j].Path.Bounds()
			assert.InDelta(t, lhi[0]-llo[0], mhi[0]-mlo[0], 1e-9)
			assert.InDelta(t, lhi[1]-llo[1], mhi[1]-mlo[1], 1e-9)
		}
	}
	// the shin ends in the boot color on both sides
	assert.Equal(t, sk.Colors.Boots, right[1].B.Color)
}
