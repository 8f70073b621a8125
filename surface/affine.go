// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// Identity returns the identity affine transform.
func Identity() f64.Aff3 {
	return f64.Aff3{1, 0, 0, 0, 1, 0}
}

// Mul returns the affine transform a*b, which applies b first.
func Mul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// Apply returns the point (x, y) transformed by m.
func Apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// ScaleFactor returns the mean linear scale of m, used to map
// lengths such as line widths.
func ScaleFactor(m f64.Aff3) float64 {
	return math.Sqrt(math.Abs(m[0]*m[4] - m[1]*m[3]))
}

// state is the part of a [Context] that Save and Restore preserve.
type state struct {
	transform   f64.Aff3
	lineWidth   float64
	strokeColor color.RGBA
}
