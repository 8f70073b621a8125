// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/math/f64"
)

// Path is a sequence of MoveTo, LineTo, CubeTo and Close commands,
// each followed by its float64 coordinate data: one end point for
// MoveTo and LineTo, two control points and an end point for CubeTo,
// and nothing for Close.
type Path []float64

// Commands
const (
	MoveTo float64 = 0
	LineTo float64 = 1
	CubeTo float64 = 2
	Close  float64 = 3
)

var cmdLens = [4]int{3, 3, 7, 1}

// CmdLen returns the overall length of the command, including
// the command op itself.
func CmdLen(cmd float64) int {
	return cmdLens[int(cmd)]
}

// Reset empties the path, keeping its memory.
func (p *Path) Reset() {
	*p = (*p)[:0]
}

// Empty returns whether the path has no segments to draw.
func (p Path) Empty() bool {
	return len(p) <= CmdLen(MoveTo)
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) {
	*p = append(*p, MoveTo, x, y)
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	*p = append(*p, LineTo, x, y)
}

// CubeTo adds a cubic bezier to (x, y) with control points (c1x, c1y)
// and (c2x, c2y).
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	*p = append(*p, CubeTo, c1x, c1y, c2x, c2y, x, y)
}

// Close closes the current sub-path.
func (p *Path) Close() {
	*p = append(*p, Close)
}

// Clone returns a copy of the path.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

// Scan calls fn for each command with its coordinate data.
func (p Path) Scan(fn func(cmd float64, pts []float64)) {
	for i := 0; i < len(p); {
		cmd := p[i]
		n := CmdLen(cmd)
		fn(cmd, p[i+1:i+n])
		i += n
	}
}

// Polyline is one flattened sub-path.
type Polyline struct {
	Points []f64.Vec2
	Closed bool
}

// Flatten returns the sub-paths of p as polylines, subdividing cubic
// beziers until each chord is within tol of the curve.
func (p Path) Flatten(tol float64) []Polyline {
	var lines []Polyline
	var cur *Polyline
	var last f64.Vec2
	p.Scan(func(cmd float64, pts []float64) {
		switch cmd {
		case MoveTo:
			lines = append(lines, Polyline{})
			cur = &lines[len(lines)-1]
			last = f64.Vec2{pts[0], pts[1]}
			cur.Points = append(cur.Points, last)
		case LineTo:
			if cur == nil {
				lines = append(lines, Polyline{Points: []f64.Vec2{last}})
				cur = &lines[len(lines)-1]
			}
			last = f64.Vec2{pts[0], pts[1]}
			cur.Points = append(cur.Points, last)
		case CubeTo:
			if cur == nil {
				lines = append(lines, Polyline{Points: []f64.Vec2{last}})
				cur = &lines[len(lines)-1]
			}
			c1 := f64.Vec2{pts[0], pts[1]}
			c2 := f64.Vec2{pts[2], pts[3]}
			end := f64.Vec2{pts[4], pts[5]}
			cur.Points = flattenCube(cur.Points, last, c1, c2, end, tol)
			last = end
		case Close:
			if cur != nil {
				cur.Closed = true
				last = cur.Points[0]
				cur = nil
			}
		}
	})
	return lines
}

// flattenCube appends points along the cubic bezier p0 c1 c2 p3,
// excluding p0, using a segment count bounded by the flatness of
// the control polygon.
func flattenCube(dst []f64.Vec2, p0, c1, c2, p3 f64.Vec2, tol float64) []f64.Vec2 {
	dd := math.Max(
		math.Hypot(p0[0]-2*c1[0]+c2[0], p0[1]-2*c1[1]+c2[1]),
		math.Hypot(c1[0]-2*c2[0]+p3[0], c1[1]-2*c2[1]+p3[1]))
	n := int(math.Ceil(math.Sqrt(0.75 * dd / math.Max(tol, 1e-6))))
	n = min(max(n, 1), 256)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		dst = append(dst, f64.Vec2{
			a*p0[0] + b*c1[0] + c*c2[0] + d*p3[0],
			a*p0[1] + b*c1[1] + c*c2[1] + d*p3[1],
		})
	}
	return dst
}

// Bounds returns the bounding box of all the points of the path,
// including bezier control points.
func (p Path) Bounds() (lo, hi f64.Vec2) {
	lo = f64.Vec2{math.Inf(1), math.Inf(1)}
	hi = f64.Vec2{math.Inf(-1), math.Inf(-1)}
	p.Scan(func(cmd float64, pts []float64) {
		for i := 0; i+1 < len(pts); i += 2 {
			lo[0] = math.Min(lo[0], pts[i])
			lo[1] = math.Min(lo[1], pts[i+1])
			hi[0] = math.Max(hi[0], pts[i])
			hi[1] = math.Max(hi[1], pts[i+1])
		}
	})
	return
}

// String returns the path in SVG path data syntax.
func (p Path) String() string {
	var sb strings.Builder
	p.Scan(func(cmd float64, pts []float64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch cmd {
		case MoveTo:
			fmt.Fprintf(&sb, "M%.4g %.4g", pts[0], pts[1])
		case LineTo:
			fmt.Fprintf(&sb, "L%.4g %.4g", pts[0], pts[1])
		case CubeTo:
			fmt.Fprintf(&sb, "C%.4g %.4g %.4g %.4g %.4g %.4g", pts[0], pts[1], pts[2], pts[3], pts[4], pts[5])
		case Close:
			sb.WriteByte('Z')
		}
	})
	return sb.String()
}

// arcCubes calls fn with the control points of the cubic beziers that
// approximate the circular arc centered at (cx, cy) with radius r from
// angle a0 to a1, each spanning at most a quarter turn.
func arcCubes(cx, cy, r, a0, a1 float64, fn func(c1x, c1y, c2x, c2y, x, y float64)) {
	sweep := a1 - a0
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	da := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(da/4) * r
	a := a0
	for range n {
		b := a + da
		sa, ca := math.Sincos(a)
		sb, cb := math.Sincos(b)
		fn(cx+r*ca-k*sa, cy+r*sa+k*ca,
			cx+r*cb+k*sb, cy+r*sb-k*cb,
			cx+r*cb, cy+r*sb)
		a = b
	}
}
