// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions of the skirender tool,
// which renders pose scripts of the sample skier to image files.
package cmd

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/robobenjie/skifreeordie-sub000/base/iox/imagex"
	"github.com/robobenjie/skifreeordie-sub000/base/iox/tomlx"
	"github.com/robobenjie/skifreeordie-sub000/config"
	"github.com/robobenjie/skifreeordie-sub000/models"
	"github.com/robobenjie/skifreeordie-sub000/pose"
	"github.com/robobenjie/skifreeordie-sub000/scene"
	"github.com/robobenjie/skifreeordie-sub000/surface/raster"
	"github.com/robobenjie/skifreeordie-sub000/surface/svg"
)

// Config is the configuration of the skirender commands.
type Config struct {

	// Script is the pose script file to render.
	Script string

	// Settings is the render settings TOML file; empty uses the defaults.
	Settings string

	// Output is the directory the frames are written to.
	Output string

	// Format is the output file format: svg or an image format
	// supported by [imagex.Save].
	Format string

	// Frame renders only the frame with this index when non-negative.
	Frame int

	// Watch re-renders whenever the script or settings file changes.
	Watch bool
}

// Defaults sets the default configuration values.
func (c *Config) Defaults() {
	c.Output = "frames"
	c.Format = "png"
	c.Frame = -1
}

// settings returns the render settings for the config.
func (c *Config) settings() (*config.Settings, error) {
	if c.Settings == "" {
		return config.Defaults(), nil
	}
	return config.Open(c.Settings)
}

// Filename returns the output filename of the given frame.
func (c *Config) Filename(frame int) string {
	return filepath.Join(c.Output, fmt.Sprintf("frame_%04d.%s", frame, strings.ToLower(c.Format)))
}

// Render renders the frames of the pose script to files in the
// output directory, returning the number of files written.
func Render(c *Config) (int, error) {
	if !strings.EqualFold(c.Format, "svg") {
		if _, err := imagex.ExtToFormat(c.Format); err != nil {
			return 0, fmt.Errorf("render: %w", err)
		}
	}
	s, err := c.settings()
	if err != nil {
		return 0, err
	}
	script, err := pose.Open(c.Script)
	if err != nil {
		return 0, err
	}
	if c.Frame >= script.Frames() {
		return 0, fmt.Errorf("render: frame %d out of range [0, %d)", c.Frame, script.Frames())
	}
	r, err := newScene(s)
	if err != nil {
		return 0, err
	}
	bg, err := s.Background()
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(c.Output, 0o755); err != nil {
		return 0, err
	}

	out := newOutput(c.Format, s.Screen.Width, s.Screen.Height, bg)
	written := 0
	err = pose.NewPlayer(script, r).Play(func(frame int) error {
		if c.Frame >= 0 && frame != c.Frame {
			return nil
		}
		written++
		return out.write(r, c.Filename(frame))
	})
	if err != nil {
		return written, err
	}
	slog.Info("rendered", "script", script.Name, "files", written, "dir", c.Output)
	return written, nil
}

// newScene returns a renderer holding a skier configured by the settings.
func newScene(s *config.Settings) (*scene.Renderer, error) {
	r := s.NewRenderer()
	opts, err := models.OptionsFrom(s)
	if err != nil {
		return nil, err
	}
	if _, err := models.NewSkier(r, opts); err != nil {
		return nil, err
	}
	return r, nil
}

// output draws frames to image or SVG files, reusing one surface.
type output struct {
	rs *raster.Surface
	sv *svg.Surface
	bg color.RGBA
}

func newOutput(format string, width, height int, bg color.RGBA) *output {
	o := &output{bg: bg}
	if strings.EqualFold(format, "svg") {
		o.sv = svg.New(width, height)
		o.sv.Background = bg
	} else {
		o.rs = raster.New(width, height)
	}
	return o
}

// write draws the current state of the renderer to the given file.
func (o *output) write(r *scene.Renderer, filename string) error {
	if o.sv != nil {
		o.sv.Reset()
		r.Draw(o.sv)
		return o.sv.SaveXML(filename)
	}
	o.rs.Clear(o.bg)
	r.Draw(o.rs)
	return o.rs.SaveImage(filename)
}

// WriteConfig writes the default render settings as TOML.
func WriteConfig(w io.Writer) error {
	return tomlx.Write(config.Defaults(), w)
}

// SaveConfig saves the default render settings to the given TOML file.
func SaveConfig(filename string) error {
	return config.Defaults().Save(filename)
}
