// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis is one of the three coordinate axes of a frame.
// In world space X is downhill, Y is across the slope and Z is up.
type Axis int32

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int32(a))
}

// Unit returns the unit vector along the axis.
func (a Axis) Unit() mgl64.Vec3 {
	var v mgl64.Vec3
	v[a] = 1
	return v
}

// Rotation returns the rotation matrix for the given angle
// in radians about the axis.
func (a Axis) Rotation(angle float64) mgl64.Mat3 {
	switch a {
	case X:
		return mgl64.Rotate3DX(angle)
	case Y:
		return mgl64.Rotate3DY(angle)
	default:
		return mgl64.Rotate3DZ(angle)
	}
}

// Transform is a rigid transform: a rotation followed by a translation.
// Applied to a point p it yields Rot*p + Pos.
type Transform struct {
	Rot mgl64.Mat3
	Pos mgl64.Vec3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Rot: mgl64.Ident3()}
}

// Rotation returns a pure rotation transform about the given axis.
func Rotation(axis Axis, angle float64) Transform {
	return Transform{Rot: axis.Rotation(angle)}
}

// Translation returns a pure translation transform.
func Translation(dx, dy, dz float64) Transform {
	return Transform{Rot: mgl64.Ident3(), Pos: mgl64.Vec3{dx, dy, dz}}
}

// Mul returns the composition t∘o: the transform that first
// applies o and then t.
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		Rot: t.Rot.Mul3(o.Rot),
		Pos: t.Pos.Add(t.Rot.Mul3x1(o.Pos)),
	}
}

// Apply transforms the given point.
func (t Transform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return t.Rot.Mul3x1(p).Add(t.Pos)
}

// ApplyVector rotates the given direction, ignoring the translation.
func (t Transform) ApplyVector(v mgl64.Vec3) mgl64.Vec3 {
	return t.Rot.Mul3x1(v)
}

// Inverse returns the inverse transform, relying on the rotation
// being orthonormal.
func (t Transform) Inverse() Transform {
	rt := t.Rot.Transpose()
	return Transform{Rot: rt, Pos: rt.Mul3x1(t.Pos).Mul(-1)}
}

// ApproxEqual returns whether every component of the rotation and
// translation differs from that of o by at most tol.
func (t Transform) ApproxEqual(o Transform, tol float64) bool {
	for i := range t.Rot {
		if math.Abs(t.Rot[i]-o.Rot[i]) > tol {
			return false
		}
	}
	for i := range t.Pos {
		if math.Abs(t.Pos[i]-o.Pos[i]) > tol {
			return false
		}
	}
	return true
}

func (t Transform) String() string {
	return fmt.Sprintf("Transform{Rot: %v, Pos: %v}", t.Rot, t.Pos)
}
