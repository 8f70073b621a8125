// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg provides a [surface.Surface] that records fills and
// strokes as SVG path elements, written out as an SVG document.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/robobenjie/skifreeordie-sub000/surface"
)

// element is one SVG element with optional child elements.
type element struct {
	start    xml.StartElement
	children []element
}

// Surface builds an SVG document.
type Surface struct {
	surface.Context

	// Width and Height are the document size in pixels.
	Width, Height int

	// Background is an optional background color, drawn as a
	// full-size rectangle when its alpha is non-zero.
	Background color.RGBA

	defs  []element
	elems []element
}

// New returns a new empty SVG surface of the given size.
func New(width, height int) *Surface {
	sv := &Surface{Width: width, Height: height}
	sv.Init()
	return sv
}

// Len returns the number of path elements drawn so far.
func (sv *Surface) Len() int {
	return len(sv.elems)
}

// Reset removes all drawn elements.
func (sv *Surface) Reset() {
	sv.defs = sv.defs[:0]
	sv.elems = sv.elems[:0]
	sv.Init()
}

// XMLAddAttr adds an attribute with the given name and value.
func XMLAddAttr(attr *[]xml.Attr, name, val string) {
	*attr = append(*attr, xml.Attr{Name: xml.Name{Local: name}, Value: val})
}

// AsHex returns the non-premultiplied color as #rrggbb, along
// with its opacity in [0, 1].
func AsHex(c color.RGBA) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 255
}

func (sv *Surface) Fill(p surface.Paint) {
	if sv.Path.Empty() {
		return
	}
	me := xml.StartElement{Name: xml.Name{Local: "path"}}
	XMLAddAttr(&me.Attr, "d", sv.Path.String())
	if p.Gradient != nil {
		id := fmt.Sprintf("grad%d", len(sv.defs))
		sv.defs = append(sv.defs, gradient(id, sv.DeviceGradient(p.Gradient)))
		XMLAddAttr(&me.Attr, "fill", "url(#"+id+")")
	} else {
		hs, op := AsHex(p.Color)
		XMLAddAttr(&me.Attr, "fill", hs)
		if op < 1 {
			XMLAddAttr(&me.Attr, "fill-opacity", fmt.Sprintf("%g", op))
		}
	}
	sv.elems = append(sv.elems, element{start: me})
}

func (sv *Surface) Stroke() {
	if sv.Path.Empty() {
		return
	}
	me := xml.StartElement{Name: xml.Name{Local: "path"}}
	XMLAddAttr(&me.Attr, "d", sv.Path.String())
	XMLAddAttr(&me.Attr, "fill", "none")
	hs, op := AsHex(sv.StrokeColor)
	XMLAddAttr(&me.Attr, "stroke", hs)
	if op < 1 {
		XMLAddAttr(&me.Attr, "stroke-opacity", fmt.Sprintf("%g", op))
	}
	XMLAddAttr(&me.Attr, "stroke-width", fmt.Sprintf("%g", sv.StrokeWidth()))
	XMLAddAttr(&me.Attr, "stroke-linecap", "round")
	XMLAddAttr(&me.Attr, "stroke-linejoin", "round")
	sv.elems = append(sv.elems, element{start: me})
}

// gradient returns the linearGradient element for g.
func gradient(id string, g *surface.LinearGradient) element {
	me := xml.StartElement{Name: xml.Name{Local: "linearGradient"}}
	XMLAddAttr(&me.Attr, "id", id)
	XMLAddAttr(&me.Attr, "gradientUnits", "userSpaceOnUse")
	XMLAddAttr(&me.Attr, "x1", fmt.Sprintf("%g", g.X0))
	XMLAddAttr(&me.Attr, "y1", fmt.Sprintf("%g", g.Y0))
	XMLAddAttr(&me.Attr, "x2", fmt.Sprintf("%g", g.X1))
	XMLAddAttr(&me.Attr, "y2", fmt.Sprintf("%g", g.Y1))
	el := element{start: me}
	for _, s := range g.Stops {
		se := xml.StartElement{Name: xml.Name{Local: "stop"}}
		hs, op := AsHex(s.Color)
		XMLAddAttr(&se.Attr, "offset", fmt.Sprintf("%g", s.Pos))
		XMLAddAttr(&se.Attr, "style", fmt.Sprintf("stop-color:%s;stop-opacity:%g;", hs, op))
		el.children = append(el.children, element{start: se})
	}
	return el
}

func encode(enc *xml.Encoder, el element) error {
	if err := enc.EncodeToken(el.start); err != nil {
		return err
	}
	for _, c := range el.children {
		if err := encode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(el.start.End())
}

// WriteXML writes the SVG document to the given writer.
func (sv *Surface) WriteXML(w io.Writer, indent bool) error {
	enc := xml.NewEncoder(w)
	if indent {
		enc.Indent("", "  ")
	}
	root := xml.StartElement{Name: xml.Name{Local: "svg"}}
	XMLAddAttr(&root.Attr, "xmlns", "http://www.w3.org/2000/svg")
	XMLAddAttr(&root.Attr, "width", fmt.Sprintf("%d", sv.Width))
	XMLAddAttr(&root.Attr, "height", fmt.Sprintf("%d", sv.Height))
	XMLAddAttr(&root.Attr, "viewBox", fmt.Sprintf("0 0 %d %d", sv.Width, sv.Height))
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	if len(sv.defs) > 0 {
		defs := element{start: xml.StartElement{Name: xml.Name{Local: "defs"}}, children: sv.defs}
		if err := encode(enc, defs); err != nil {
			return err
		}
	}
	if sv.Background.A > 0 {
		bg := xml.StartElement{Name: xml.Name{Local: "rect"}}
		XMLAddAttr(&bg.Attr, "width", "100%")
		XMLAddAttr(&bg.Attr, "height", "100%")
		hs, _ := AsHex(sv.Background)
		XMLAddAttr(&bg.Attr, "fill", hs)
		if err := encode(enc, element{start: bg}); err != nil {
			return err
		}
	}
	for _, el := range sv.elems {
		if err := encode(enc, el); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}

// SaveXML saves the SVG document to the given file.
func (sv *Surface) SaveXML(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := sv.WriteXML(bw, true); err != nil {
		return err
	}
	return bw.Flush()
}
