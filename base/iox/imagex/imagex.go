// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides image file helpers for rendered output:
// format detection, open and save, RGBA conversion and golden image
// test assertions.
package imagex

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the image file formats.
type Formats int32

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP

	// WebP can be read but not written.
	WebP
)

var formatNames = [...]string{"none", "png", "jpeg", "gif", "tiff", "bmp", "webp"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int(f))
	}
	return formatNames[f]
}

// extFormats maps lower case file extensions, and the format names
// reported by [image.Decode], to formats.
var extFormats = map[string]Formats{
	"png": PNG, "jpg": JPEG, "jpeg": JPEG, "gif": GIF,
	"tif": TIFF, "tiff": TIFF, "bmp": BMP, "webp": WebP,
}

// ExtToFormat returns the format for a file extension, with or
// without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	e := strings.ToLower(strings.TrimPrefix(ext, "."))
	if f, ok := extFormats[e]; ok {
		return f, nil
	}
	return None, fmt.Errorf("imagex: image extension %q not recognized", ext)
}

// Open decodes the image in the given file, returning its format.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(bufio.NewReader(file))
}

// Read decodes an image in any of the [Formats], returning its format.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, name, err := image.Decode(r)
	if err != nil {
		return nil, None, err
	}
	f, err := ExtToFormat(name)
	return im, f, err
}

// Save encodes the image to the given file, in the format given by
// the file extension.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	err = errors.Join(Write(im, bw, f), bw.Flush())
	return errors.Join(err, file.Close())
}

// Write encodes the image to w in the given format. Every format
// except [WebP] can be written.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		return bmp.Encode(w, im)
	}
	return fmt.Errorf("imagex: cannot write %v images", f)
}
