// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/surface"
)

// Ball is a sphere, drawn as a filled disc.
type Ball struct {
	Base

	// Center is the center in frame coordinates.
	Center mgl64.Vec3

	// Radius is the radius in world units.
	Radius float64

	center mgl64.Vec3
}

// WorldCenter returns the world center from the last [Calculate].
func (b *Ball) WorldCenter() mgl64.Vec3 {
	return b.center
}

func (b *Ball) calculate(cam camera.Camera) {
	b.center = b.Frame.ToWorld(b.Center)
	b.Depth = cam.Depth(b.center)
	b.Hidden = b.Radius <= 0
}

func (b *Ball) draw(s surface.Surface, cam camera.Camera) {
	disc(s, cam.Project(b.center), cam.Scale(b.Radius), b.Color)
}
