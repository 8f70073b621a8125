// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the render settings for a scene:
// the camera, the output screen, a named color palette and the
// names of the draw layers. Settings are saved as TOML.
package config

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/robobenjie/skifreeordie-sub000/base/errors"
	"github.com/robobenjie/skifreeordie-sub000/base/iox/tomlx"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/scene"
)

var (
	// ErrUnknownColor is returned for a palette name that is not defined.
	ErrUnknownColor = errors.New("config: unknown color")

	// ErrUnknownLayer is returned for a layer name that is not defined.
	ErrUnknownLayer = errors.New("config: unknown layer")

	// ErrInvalid is returned by [Settings.Validate] for out of range values.
	ErrInvalid = errors.New("config: invalid setting")
)

// Settings are the render settings for a scene.
type Settings struct {

	// Camera is the oblique camera projection.
	Camera Camera `toml:"camera"`

	// Screen is the output image.
	Screen Screen `toml:"screen"`

	// Palette maps color names to #rgb, #rrggbb or #rrggbbaa hex colors.
	Palette map[string]string `toml:"palette"`

	// Layers are the names of the draw layers, in draw order.
	Layers []string `toml:"layers"`
}

// Camera holds the projection parameters.
type Camera struct {

	// PixelsPerMeter is the screen scale of one world meter.
	PixelsPerMeter float64 `toml:"pixels_per_meter"`

	// YPerX is how far up the screen a point moves per meter downhill.
	YPerX float64 `toml:"y_per_x"`
}

// Screen holds the output image parameters.
type Screen struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// OriginX and OriginY are the pixel position of the world origin.
	OriginX float64 `toml:"origin_x"`
	OriginY float64 `toml:"origin_y"`

	Zoom float64 `toml:"zoom"`

	// Background is the hex color the image is cleared to.
	Background string `toml:"background"`
}

// Defaults returns the default settings.
func Defaults() *Settings {
	return &Settings{
		Camera: Camera{PixelsPerMeter: camera.DefaultPixelsPerMeter, YPerX: camera.DefaultYPerX},
		Screen: Screen{Width: 320, Height: 240, OriginX: 160, OriginY: 160, Zoom: 2, Background: "#f4f8ff"},
		Palette: map[string]string{
			"jacket":  "#c8102e",
			"pants":   "#2b3a67",
			"skin":    "#f1c27d",
			"helmet":  "#1d4ed8",
			"visor":   "#1f2937",
			"goggles": "#f59e0b",
			"gloves":  "#111827",
			"boots":   "#374151",
			"skis":    "#facc15",
			"poles":   "#9ca3af",
			"bib":     "#f8fafc",
			"shadow":  "#94a3b880",
		},
		Layers: []string{"shadow", "back", "body", "front"},
	}
}

// Open returns the default settings overridden by the given TOML file.
// The result is validated.
func Open(filename string) (*Settings, error) {
	s := Defaults()
	if err := tomlx.Open(s, filename); err != nil {
		return nil, fmt.Errorf("config: open %s: %w", filename, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	return tomlx.Save(s, filename)
}

// Validate returns the joined errors of all invalid settings.
func (s *Settings) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	if s.Camera.PixelsPerMeter <= 0 {
		bad("pixels_per_meter %g must be positive", s.Camera.PixelsPerMeter)
	}
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		bad("screen size %dx%d must be positive", s.Screen.Width, s.Screen.Height)
	}
	if s.Screen.Zoom <= 0 {
		bad("zoom %g must be positive", s.Screen.Zoom)
	}
	if _, err := ParseHex(s.Screen.Background); err != nil {
		errs = append(errs, err)
	}
	names := make([]string, 0, len(s.Palette))
	for name := range s.Palette {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, err := ParseHex(s.Palette[name]); err != nil {
			errs = append(errs, fmt.Errorf("palette %q: %w", name, err))
		}
	}
	for i, name := range s.Layers {
		if slices.Index(s.Layers, name) != i {
			bad("duplicate layer %q", name)
		}
	}
	return errors.Join(errs...)
}

// Color returns the palette color with the given name.
func (s *Settings) Color(name string) (color.RGBA, error) {
	h, ok := s.Palette[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w %q", ErrUnknownColor, name)
	}
	return ParseHex(h)
}

// Layer returns the index of the layer with the given name.
func (s *Settings) Layer(name string) (int, error) {
	i := slices.Index(s.Layers, name)
	if i < 0 {
		return 0, fmt.Errorf("%w %q", ErrUnknownLayer, name)
	}
	return i, nil
}

// Background returns the screen background color.
func (s *Settings) Background() (color.RGBA, error) {
	return ParseHex(s.Screen.Background)
}

// NewCamera returns the camera described by the settings.
func (s *Settings) NewCamera() camera.Camera {
	return camera.New(s.Camera.PixelsPerMeter, s.Camera.YPerX)
}

// Configure sets the camera, origin and zoom of the renderer.
func (s *Settings) Configure(r *scene.Renderer) {
	r.Camera = s.NewCamera()
	r.Origin = mgl64.Vec2{s.Screen.OriginX, s.Screen.OriginY}
	r.Zoom = s.Screen.Zoom
}

// NewRenderer returns a new empty renderer configured by the settings.
func (s *Settings) NewRenderer() *scene.Renderer {
	r := scene.NewRenderer(s.NewCamera())
	s.Configure(r)
	return r
}

// ParseHex parses a #rgb, #rrggbb or #rrggbbaa hex color into
// an alpha premultiplied color.
func ParseHex(s string) (color.RGBA, error) {
	a := uint64(255)
	if len(s) == 9 && s[0] == '#' {
		v, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("config: invalid color %q: %w", s, err)
		}
		a = v
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBAModel.Convert(color.NRGBA{r, g, b, uint8(a)}).(color.RGBA), nil
}
