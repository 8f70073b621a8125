// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a [surface.Surface] that renders into an
// [image.RGBA] using the anti-aliasing rasterizer from
// golang.org/x/image/vector.
package raster

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/chewxy/math32"
	"github.com/robobenjie/skifreeordie-sub000/base/iox/imagex"
	"github.com/robobenjie/skifreeordie-sub000/surface"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// Tolerance is the maximum distance in pixels between a curve and
// its flattened polyline when stroking.
const Tolerance = 0.1

// Surface renders to an image.
type Surface struct {
	surface.Context
	image *image.RGBA
	ras   *vector.Rasterizer
}

// New returns a new surface rendering to a new transparent image of
// the given size.
func New(width, height int) *Surface {
	return NewFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewFromImage returns a new surface rendering on a copy of the
// given image.
func NewFromImage(img image.Image) *Surface {
	rgba := clone.AsRGBA(img)
	sz := rgba.Bounds().Size()
	rs := &Surface{image: rgba, ras: vector.NewRasterizer(sz.X, sz.Y)}
	rs.Init()
	return rs
}

// Image returns the rendered image.
func (rs *Surface) Image() *image.RGBA {
	return rs.image
}

// Size returns the image size in pixels.
func (rs *Surface) Size() image.Point {
	return rs.image.Bounds().Size()
}

// Clear fills the whole image with the given color, ignoring the
// current transform.
func (rs *Surface) Clear(c color.Color) {
	imagex.Fill(rs.image, c)
}

// SaveImage saves the image to the given file, with the format inferred
// from the file extension.
func (rs *Surface) SaveImage(filename string) error {
	return imagex.Save(rs.image, filename)
}

func (rs *Surface) reset() {
	sz := rs.Size()
	rs.ras.Reset(sz.X, sz.Y)
	rs.ras.DrawOp = draw.Over
}

func (rs *Surface) draw(src image.Image) {
	rs.ras.Draw(rs.image, rs.image.Bounds(), src, image.Point{})
}

// Fill fills the current path with the non-zero rule.
func (rs *Surface) Fill(p surface.Paint) {
	if rs.Path.Empty() {
		return
	}
	rs.reset()
	open := false
	rs.Path.Scan(func(cmd float64, pts []float64) {
		switch cmd {
		case surface.MoveTo:
			if open {
				rs.ras.ClosePath()
			}
			rs.ras.MoveTo(float32(pts[0]), float32(pts[1]))
			open = true
		case surface.LineTo:
			rs.ras.LineTo(float32(pts[0]), float32(pts[1]))
		case surface.CubeTo:
			rs.ras.CubeTo(float32(pts[0]), float32(pts[1]), float32(pts[2]), float32(pts[3]), float32(pts[4]), float32(pts[5]))
		case surface.Close:
			rs.ras.ClosePath()
			open = false
		}
	})
	if open {
		rs.ras.ClosePath()
	}
	if p.Gradient != nil {
		rs.draw(&gradientImage{g: rs.DeviceGradient(p.Gradient)})
		return
	}
	rs.draw(image.NewUniform(p.Color))
}

// Stroke strokes the current path with round joins and caps, by
// filling a quad along every flattened segment and a disc at every
// vertex. All pieces share one winding direction so that overlaps
// do not cancel under the accumulating rasterizer.
func (rs *Surface) Stroke() {
	w := float32(rs.StrokeWidth())
	if rs.Path.Empty() || w <= 0 {
		return
	}
	hw := w / 2
	rs.reset()
	for _, pl := range rs.Path.Flatten(Tolerance) {
		pts := pl.Points
		if pl.Closed && len(pts) > 1 {
			pts = append(pts, pts[0])
		}
		for i, p := range pts {
			rs.disc(p, hw)
			if i > 0 {
				rs.quad(pts[i-1], p, hw)
			}
		}
	}
	rs.draw(image.NewUniform(rs.StrokeColor))
}

// quad adds a positively wound rectangle of half width hw around
// the segment a b.
func (rs *Surface) quad(a, b f64.Vec2, hw float32) {
	ax, ay := float32(a[0]), float32(a[1])
	bx, by := float32(b[0]), float32(b[1])
	dx, dy := bx-ax, by-ay
	l := math32.Hypot(dx, dy)
	if l < 1e-6 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	rs.ras.MoveTo(ax-nx, ay-ny)
	rs.ras.LineTo(bx-nx, by-ny)
	rs.ras.LineTo(bx+nx, by+ny)
	rs.ras.LineTo(ax+nx, ay+ny)
	rs.ras.ClosePath()
}

// disc adds a positively wound polygon approximating a disc of
// radius r at p.
func (rs *Surface) disc(p f64.Vec2, r float32) {
	cx, cy := float32(p[0]), float32(p[1])
	n := int(math32.Ceil(math32.Pi / math32.Acos(1-math32.Min(float32(Tolerance)/r, 1))))
	n = min(max(n, 8), 64)
	rs.ras.MoveTo(cx+r, cy)
	for i := 1; i < n; i++ {
		a := 2 * math32.Pi * float32(i) / float32(n)
		s, c := math32.Sincos(a)
		rs.ras.LineTo(cx+r*c, cy+r*s)
	}
	rs.ras.ClosePath()
}

// gradientImage is an unbounded image of a linear gradient in
// device coordinates.
type gradientImage struct {
	g *surface.LinearGradient
}

func (gi *gradientImage) ColorModel() color.Model { return color.RGBAModel }

func (gi *gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (gi *gradientImage) At(x, y int) color.Color {
	g := gi.g
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	dd := dx*dx + dy*dy
	if dd == 0 {
		return g.At(0)
	}
	px, py := float64(x)+0.5-g.X0, float64(y)+0.5-g.Y0
	return g.At((px*dx + py*dy) / dd)
}
