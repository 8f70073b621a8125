// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/surface"
)

// Kappa is the control point distance, as a fraction of the radius,
// of the cubic bezier that best approximates a quarter circle.
const Kappa = 0.5522847498

// ellipseQuarters adds n quarter arcs of the ellipse with center c
// and conjugate semi-diameters a and b, starting at c+a and turning
// toward c+b. The current point must already be c+a. Each quarter is
// the bezier inscribed in the parallelogram spanned by a and b, so
// it is the projection of a circle's quarter under any affine map.
func ellipseQuarters(s surface.Surface, c, a, b mgl64.Vec2, n int) {
	for range n {
		curveTo(s, c.Add(a).Add(b.Mul(Kappa)), c.Add(b).Add(a.Mul(Kappa)), c.Add(b))
		a, b = b, a.Mul(-1)
	}
}

// ellipse adds a closed ellipse with center c and conjugate
// semi-diameters a and b as a new sub-path.
func ellipse(s surface.Surface, c, a, b mgl64.Vec2) {
	moveTo(s, c.Add(a))
	ellipseQuarters(s, c, a, b, 4)
	s.ClosePath()
}

// perp returns v rotated by a quarter turn.
func perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v[1], v[0]}
}

// cross2 returns the z component of the cross product of a and b.
func cross2(a, b mgl64.Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}
