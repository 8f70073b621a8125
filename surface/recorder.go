// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "image/color"

// Item is a union interface for recorded items: [FillItem] or [StrokeItem].
type Item interface {
	isItem()
}

// FillItem records one Fill call.
type FillItem struct {

	// Path is the filled path in device coordinates.
	Path Path

	// Paint is the paint, with any gradient in device coordinates.
	Paint Paint
}

func (*FillItem) isItem() {}

// StrokeItem records one Stroke call.
type StrokeItem struct {

	// Path is the stroked path in device coordinates.
	Path Path

	// Width is the line width in device units.
	Width float64

	Color color.RGBA
}

func (*StrokeItem) isItem() {}

// Recorder is a [Surface] that records every fill and stroke as an
// [Item], in order. It is useful for testing draw order and geometry.
type Recorder struct {
	Context
	Items []Item
}

// NewRecorder returns a new empty recorder.
func NewRecorder() *Recorder {
	r := &Recorder{}
	r.Init()
	return r
}

// Reset clears the recorded items and the drawing state.
func (r *Recorder) Reset() {
	r.Items = r.Items[:0]
	r.Init()
}

func (r *Recorder) Fill(p Paint) {
	if p.Gradient != nil {
		p.Gradient = r.DeviceGradient(p.Gradient)
	}
	r.Items = append(r.Items, &FillItem{Path: r.Path.Clone(), Paint: p})
}

func (r *Recorder) Stroke() {
	r.Items = append(r.Items, &StrokeItem{Path: r.Path.Clone(), Width: r.StrokeWidth(), Color: r.StrokeColor})
}

// Fills returns the recorded fill items.
func (r *Recorder) Fills() []*FillItem {
	var fs []*FillItem
	for _, it := range r.Items {
		if f, ok := it.(*FillItem); ok {
			fs = append(fs, f)
		}
	}
	return fs
}

// Colors returns the color of each recorded item in order: the fill
// color, the first gradient stop, or the stroke color.
func (r *Recorder) Colors() []color.RGBA {
	cs := make([]color.RGBA, len(r.Items))
	for i, it := range r.Items {
		switch x := it.(type) {
		case *FillItem:
			cs[i] = x.Paint.Color
			if x.Paint.Gradient != nil && len(x.Paint.Gradient.Stops) > 0 {
				cs[i] = x.Paint.Gradient.Stops[0].Color
			}
		case *StrokeItem:
			cs[i] = x.Color
		}
	}
	return cs
}
