// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/frame"
)

// Mirror returns a copy of the primitive on the same frame, with the
// same color and layer, and with the given coordinate of every local
// point negated. Line segments, polygons, circles and body segments
// can be mirrored; other types return [ErrMirrorUnsupported].
func Mirror(p Primitive, axis frame.Axis) (Primitive, error) {
	if IsNil(p) {
		return nil, fmt.Errorf("Mirror %T: %w", p, ErrMalformed)
	}
	switch x := p.(type) {
	case *LineSegment:
		m := *x
		m.reset()
		m.world = nil
		m.Points = mirrorPoints(x.Points, axis)
		return &m, nil
	case *Polygon:
		m := *x
		m.reset()
		m.world = nil
		m.Points = mirrorPoints(x.Points, axis)
		return &m, nil
	case *Circle:
		m := *x
		m.reset()
		m.Center = mirrorPoint(x.Center, axis)
		return &m, nil
	case *BodySegment:
		m := *x
		m.reset()
		m.A.Pos = mirrorPoint(x.A.Pos, axis)
		m.B.Pos = mirrorPoint(x.B.Pos, axis)
		return &m, nil
	case *Ball, *Hemisphere, *CylinderProjection:
		return nil, fmt.Errorf("Mirror %T about %v: %w", p, axis, ErrMirrorUnsupported)
	}
	return nil, fmt.Errorf("Mirror %T: %w", p, ErrMirrorUnsupported)
}

func mirrorPoint(p mgl64.Vec3, axis frame.Axis) mgl64.Vec3 {
	p[axis] = -p[axis]
	return p
}

func mirrorPoints(pts []mgl64.Vec3, axis frame.Axis) []mgl64.Vec3 {
	m := make([]mgl64.Vec3, len(pts))
	for i, p := range pts {
		m[i] = mirrorPoint(p, axis)
	}
	return m
}
