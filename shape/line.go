// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/surface"
)

// LineSegment is a stroked polyline of fixed world thickness.
type LineSegment struct {
	Base

	// Points are the polyline points in frame coordinates.
	Points []mgl64.Vec3

	// Thickness is the stroke width in world units.
	Thickness float64

	world []mgl64.Vec3
}

// WorldPoints returns the world points from the last [Calculate].
func (l *LineSegment) WorldPoints() []mgl64.Vec3 {
	return l.world
}

func (l *LineSegment) calculate(cam camera.Camera) {
	l.world = toWorld(l.world, l.Frame, l.Points)
	l.Depth = meanDepth(cam, l.world)
	l.Hidden = len(l.world) < 2 || l.Thickness <= 0
}

func (l *LineSegment) draw(s surface.Surface, cam camera.Camera) {
	s.BeginPath()
	moveTo(s, cam.Project(l.world[0]))
	for _, p := range l.world[1:] {
		lineTo(s, cam.Project(p))
	}
	s.SetLineWidth(cam.Scale(l.Thickness))
	s.SetStrokeColor(l.Color)
	s.Stroke()
}
