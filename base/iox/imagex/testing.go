// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the subset of *testing.T used by [Assert].
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] save the given image as the new
// golden image instead of comparing against it. It is set when the
// environment variable SKIRENDER_UPDATE_TESTDATA is "true", which
// should only be done after an intended change in rendering.
var UpdateTestImages = os.Getenv("SKIRENDER_UPDATE_TESTDATA") == "true"

// Tolerance is the per channel difference allowed by [Assert].
var Tolerance = 10

// Assert checks that img matches the golden image of the given name
// in the testdata directory, with ".png" added when the name has no
// extension. A missing golden image is an error unless
// [UpdateTestImages] is set. On a mismatch it saves the rendered
// image and the difference next to the golden one, as name.fail.png
// and name.diff.png.
func Assert(t TestingT, img image.Image, name string) {
	fn := filepath.Join("testdata", name)
	ext := filepath.Ext(fn)
	if ext == "" {
		ext = ".png"
		fn += ext
	}
	failFn := strings.TrimSuffix(fn, ext) + ".fail" + ext
	diffFn := strings.TrimSuffix(fn, ext) + ".diff" + ext

	if UpdateTestImages {
		if err := os.MkdirAll(filepath.Dir(fn), 0750); err != nil {
			t.Errorf("imagex.Assert: %v", err)
			return
		}
		if err := Save(img, fn); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", fn, err)
		}
		os.Remove(failFn)
		os.Remove(diffFn)
		return
	}

	golden, _, err := Open(fn)
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("imagex.Assert: no golden image %s; set SKIRENDER_UPDATE_TESTDATA=true to create it", fn)
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: opening %s: %v", fn, err)
		return
	}

	if msg := compare(img, golden); msg != "" {
		t.Errorf("imagex.Assert: %s differs from %s: %s; see %s", name, fn, msg, failFn)
		if err := Save(img, failFn); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", failFn, err)
		}
		if err := Save(diffImage(img, golden), diffFn); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", diffFn, err)
		}
		return
	}
	os.Remove(failFn)
	os.Remove(diffFn)
}

// compare returns a description of the first difference between the
// two images beyond [Tolerance], or "" if there is none.
func compare(img, golden image.Image) string {
	ib, gb := img.Bounds(), golden.Bounds()
	if ib != gb {
		return fmt.Sprintf("bounds %v, expected %v", ib, gb)
	}
	for y := ib.Min.Y; y < ib.Max.Y; y++ {
		for x := ib.Min.X; x < ib.Max.X; x++ {
			c, g := rgbaAt(img, x, y), rgbaAt(golden, x, y)
			if !within(c, g, Tolerance) {
				return fmt.Sprintf("pixel (%d, %d) is %v, expected %v", x, y, c, g)
			}
		}
	}
	return ""
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

// within returns whether no channel of a and b differs by more
// than tol.
func within(a, b color.RGBA, tol int) bool {
	for _, d := range [4]int{
		absDiff(a.R, b.R), absDiff(a.G, b.G), absDiff(a.B, b.B), absDiff(a.A, b.A),
	} {
		if d > tol {
			return false
		}
	}
	return true
}

// diffImage returns an opaque image of the per channel absolute
// differences between a and b.
func diffImage(a, b image.Image) *image.RGBA {
	bounds := a.Bounds()
	d := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ca, cb := rgbaAt(a, x, y), rgbaAt(b, x, y)
			d.SetRGBA(x, y, color.RGBA{uint8(absDiff(ca.R, cb.R)), uint8(absDiff(ca.G, cb.G)), uint8(absDiff(ca.B, cb.B)), 255})
		}
	}
	return d
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
