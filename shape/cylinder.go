// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/surface"
)

// ProfilePoint is one sample of a [CylinderProjection] profile.
type ProfilePoint struct {

	// Angle is the angle about the frame's Z axis, in [0, 2π],
	// measured from +X toward +Y.
	Angle float64

	// Height is the height as a fraction of the cylinder height.
	Height float64
}

// CylinderProjection is a band wrapped around the Z axis of its
// frame, such as the visor of a helmet. The cross section of the
// cylinder is an ellipse whose radii are interpolated between the
// bottom and the top. The band runs from a constant base height up to
// the height given by the profile at each angle. Only the half of the
// band that faces the camera is drawn.
type CylinderProjection struct {
	Base

	// TopRadius is the (x, y) radii of the cross section at the top.
	TopRadius mgl64.Vec2

	// BottomRadius is the (x, y) radii of the cross section at the bottom.
	BottomRadius mgl64.Vec2

	// Height is the height of the cylinder in world units.
	Height float64

	// Profile is the upper edge of the band, in ascending angle order.
	Profile []ProfilePoint

	// BaseFraction is the height of the lower edge of the band, as a
	// fraction of the cylinder height.
	BaseFraction float64

	// bands are the visible pieces of the band in world coordinates.
	bands []band
}

// band is one visible piece of a [CylinderProjection], with matching
// points along its upper and lower edges.
type band struct {
	top, bottom []mgl64.Vec3
}

// Bands returns the number of visible pieces as of the last [Calculate].
func (cp *CylinderProjection) Bands() int {
	return len(cp.bands)
}

// validateProfile checks that a profile has at least two samples with
// ascending angles in [0, 2π].
func validateProfile(pr []ProfilePoint) error {
	if len(pr) < 2 {
		return fmt.Errorf("%w: profile needs at least 2 points, has %d", ErrMalformed, len(pr))
	}
	for i, p := range pr {
		if p.Angle < 0 || p.Angle > 2*math.Pi {
			return fmt.Errorf("%w: profile angle %g at %d is outside [0, 2π]", ErrMalformed, p.Angle, i)
		}
		if i > 0 && p.Angle <= pr[i-1].Angle {
			return fmt.Errorf("%w: profile angles must ascend, %g at %d follows %g", ErrMalformed, p.Angle, i, pr[i-1].Angle)
		}
	}
	return nil
}

// Local returns the point of the cylinder surface at the given angle
// and height fraction, in frame coordinates.
func (cp *CylinderProjection) Local(angle, height float64) mgl64.Vec3 {
	rx := cp.BottomRadius[0] + (cp.TopRadius[0]-cp.BottomRadius[0])*height
	ry := cp.BottomRadius[1] + (cp.TopRadius[1]-cp.BottomRadius[1])*height
	s, c := math.Sincos(angle)
	return mgl64.Vec3{rx * c, ry * s, height * cp.Height}
}

// SeamStart returns the angle at which the visible half turn starts
// for a camera direction given in frame coordinates, in [0, 2π), and
// whether there is a seam at all. There is none when the camera looks
// along the axis, in which case the whole band is visible.
func SeamStart(camLocal mgl64.Vec3) (float64, bool) {
	seam := mgl64.Vec3{0, 0, 1}.Cross(camLocal)
	if math.Hypot(seam[0], seam[1]) < 1e-9 {
		return 0, false
	}
	start := math.Atan2(-seam[1], -seam[0])
	if start < 0 {
		start += 2 * math.Pi
	}
	return start, true
}

// VisibleChains clips the profile to the half turn from start to
// start+π, where start is in [0, 2π). When that arc wraps past 2π the
// result is two chains, [start, 2π] and [0, start+π-2π]; otherwise it
// is one. Chain ends are interpolated at the arc boundaries but never
// extrapolated past the ends of the profile. Chains with fewer than
// two points are dropped.
func VisibleChains(profile []ProfilePoint, start float64) [][]ProfilePoint {
	end := start + math.Pi
	var chains [][]ProfilePoint
	add := func(lo, hi float64) {
		if c := clipProfile(profile, lo, hi); len(c) >= 2 {
			chains = append(chains, c)
		}
	}
	if end > 2*math.Pi {
		add(start, 2*math.Pi)
		add(0, end-2*math.Pi)
	} else {
		add(start, end)
	}
	return chains
}

// clipProfile returns the part of the profile between angles lo and hi.
func clipProfile(profile []ProfilePoint, lo, hi float64) []ProfilePoint {
	var c []ProfilePoint
	for i, p := range profile {
		if i > 0 {
			q := profile[i-1]
			if q.Angle < lo && p.Angle > lo {
				c = append(c, lerpProfile(q, p, lo))
			}
		}
		if p.Angle >= lo && p.Angle <= hi {
			c = append(c, p)
		}
		if i > 0 {
			q := profile[i-1]
			if q.Angle < hi && p.Angle > hi {
				c = append(c, lerpProfile(q, p, hi))
			}
		}
	}
	return c
}

func lerpProfile(a, b ProfilePoint, angle float64) ProfilePoint {
	t := (angle - a.Angle) / (b.Angle - a.Angle)
	return ProfilePoint{Angle: angle, Height: a.Height + (b.Height-a.Height)*t}
}

func (cp *CylinderProjection) calculate(cam camera.Camera) {
	w := cp.Frame.World()
	cp.Depth = cam.Depth(w.Apply(mgl64.Vec3{0, 0, cp.Height / 2}))
	cp.bands = cp.bands[:0]
	if len(cp.Profile) < 2 {
		cp.Hidden = true
		return
	}
	camLocal := w.Rot.Transpose().Mul3x1(cam.ToCamera())
	chains := [][]ProfilePoint{cp.Profile}
	if start, ok := SeamStart(camLocal); ok {
		chains = VisibleChains(cp.Profile, start)
	}
	for _, ch := range chains {
		var b band
		for _, p := range ch {
			b.top = append(b.top, w.Apply(cp.Local(p.Angle, p.Height)))
			b.bottom = append(b.bottom, w.Apply(cp.Local(p.Angle, cp.BaseFraction)))
		}
		cp.bands = append(cp.bands, b)
	}
	cp.Hidden = len(cp.bands) == 0
}

func (cp *CylinderProjection) draw(s surface.Surface, cam camera.Camera) {
	for _, b := range cp.bands {
		s.BeginPath()
		moveTo(s, cam.Project(b.top[0]))
		for _, p := range b.top[1:] {
			lineTo(s, cam.Project(p))
		}
		for i := len(b.bottom) - 1; i >= 0; i-- {
			lineTo(s, cam.Project(b.bottom[i]))
		}
		s.ClosePath()
		s.Fill(surface.Solid(cp.Color))
	}
}
