// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/surface"
)

// Polygon is a filled polygon. It is drawn through its projected
// points in the order given, with no clipping.
type Polygon struct {
	Base

	// Points are the vertices in frame coordinates.
	Points []mgl64.Vec3

	world []mgl64.Vec3
}

// WorldPoints returns the world points from the last [Calculate].
func (p *Polygon) WorldPoints() []mgl64.Vec3 {
	return p.world
}

func (p *Polygon) calculate(cam camera.Camera) {
	p.world = toWorld(p.world, p.Frame, p.Points)
	p.Depth = meanDepth(cam, p.world)
	p.Hidden = len(p.world) < 3
}

func (p *Polygon) draw(s surface.Surface, cam camera.Camera) {
	s.BeginPath()
	moveTo(s, cam.Project(p.world[0]))
	for _, w := range p.world[1:] {
		lineTo(s, cam.Project(w))
	}
	s.ClosePath()
	s.Fill(surface.Solid(p.Color))
}
