// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/surface"
)

// Endpoint is one end of a [BodySegment].
type Endpoint struct {

	// Pos is the position in frame coordinates.
	Pos mgl64.Vec3

	// Radius is the radius of the limb at this end, in world units.
	Radius float64

	// Color overrides the segment color at this end when non-zero.
	Color color.RGBA

	// SkipCap skips drawing the round cap at this end.
	SkipCap bool
}

// BodySegment is a tapered capsule between two endpoints, used for
// limbs: a round cap at each end joined by a trapezoid, filled with
// a gradient when the ends have different colors.
type BodySegment struct {
	Base
	A, B Endpoint

	a, b mgl64.Vec3
}

// WorldEnds returns the world positions of the endpoints from the
// last [Calculate].
func (bs *BodySegment) WorldEnds() (mgl64.Vec3, mgl64.Vec3) {
	return bs.a, bs.b
}

// EndColors returns the colors of the two ends, which fall back to
// the segment color.
func (bs *BodySegment) EndColors() (color.RGBA, color.RGBA) {
	ca, cb := bs.A.Color, bs.B.Color
	if ca == (color.RGBA{}) {
		ca = bs.Color
	}
	if cb == (color.RGBA{}) {
		cb = bs.Color
	}
	return ca, cb
}

func (bs *BodySegment) calculate(cam camera.Camera) {
	w := bs.Frame.World()
	bs.a = w.Apply(bs.A.Pos)
	bs.b = w.Apply(bs.B.Pos)
	bs.Depth = (cam.Depth(bs.a) + cam.Depth(bs.b)) / 2
	// coincident ends on screen leave no direction for the sides
	d := cam.Project(bs.b).Sub(cam.Project(bs.a))
	bs.Hidden = d.Len() < Epsilon
}

func (bs *BodySegment) draw(s surface.Surface, cam camera.Camera) {
	sa, sb := cam.Project(bs.a), cam.Project(bs.b)
	ra, rb := cam.Scale(bs.A.Radius), cam.Scale(bs.B.Radius)
	ca, cb := bs.EndColors()
	if !bs.A.SkipCap && ra > 0 {
		disc(s, sa, ra, ca)
	}
	if !bs.B.SkipCap && rb > 0 {
		disc(s, sb, rb, cb)
	}
	n := perp(sb.Sub(sa).Normalize())
	s.BeginPath()
	moveTo(s, sa.Add(n.Mul(ra)))
	lineTo(s, sb.Add(n.Mul(rb)))
	lineTo(s, sb.Sub(n.Mul(rb)))
	lineTo(s, sa.Sub(n.Mul(ra)))
	s.ClosePath()
	if ca == cb {
		s.Fill(surface.Solid(ca))
		return
	}
	s.Fill(surface.Paint{Gradient: surface.NewLinear(sa[0], sa[1], sb[0], sb[1], ca, cb)})
}
