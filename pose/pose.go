// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pose provides pose scripts, which are sequences of ticks
// that each give a time step and named parameter values, and a
// [Player] that feeds them to a [scene.Renderer].
package pose

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"math"

	"github.com/robobenjie/skifreeordie-sub000/base/errors"
	"github.com/robobenjie/skifreeordie-sub000/base/iox/yamlx"
	"github.com/robobenjie/skifreeordie-sub000/scene"
)

// ErrInvalid is returned for a script with an invalid tick.
var ErrInvalid = errors.New("pose: invalid script")

// Script is a pose script.
type Script struct {

	// Name is a label for the script, used in logs.
	Name string `yaml:"name,omitempty"`

	// Start holds parameter values applied with the first tick,
	// under those of the tick itself.
	Start map[string]float64 `yaml:"start,omitempty"`

	// Ticks are played in order.
	Ticks []Tick `yaml:"ticks"`
}

// Tick is one step of a [Script].
type Tick struct {

	// DT is the time step in seconds.
	DT float64 `yaml:"dt"`

	// Params are the parameter values set by this tick. Parameters
	// that are not given keep their last value.
	Params map[string]float64 `yaml:"params,omitempty"`

	// Repeat is the number of times the tick is played; zero means once.
	// Repeated ticks only advance the time.
	Repeat int `yaml:"repeat,omitempty"`
}

// Times returns the number of times the tick is played.
func (t *Tick) Times() int {
	return max(t.Repeat, 1)
}

// Open reads and validates a script from the given YAML file.
func Open(filename string) (*Script, error) {
	s := &Script{}
	if err := yamlx.Open(s, filename); err != nil {
		return nil, fmt.Errorf("pose: open %s: %w", filename, err)
	}
	if s.Name == "" {
		s.Name = filename
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Read reads and validates a script from YAML.
func Read(r io.Reader) (*Script, error) {
	s := &Script{}
	if err := yamlx.Read(s, r); err != nil {
		return nil, fmt.Errorf("pose: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the script to the given YAML file.
func (s *Script) Save(filename string) error {
	return yamlx.Save(s, filename)
}

// Validate returns the joined errors of all invalid ticks.
func (s *Script) Validate() error {
	var errs []error
	for i, t := range s.Ticks {
		if t.DT < 0 || math.IsNaN(t.DT) || math.IsInf(t.DT, 0) {
			errs = append(errs, fmt.Errorf("%w: tick %d: dt %g", ErrInvalid, i, t.DT))
		}
		if t.Repeat < 0 {
			errs = append(errs, fmt.Errorf("%w: tick %d: repeat %d", ErrInvalid, i, t.Repeat))
		}
		for name, v := range t.Params {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				errs = append(errs, fmt.Errorf("%w: tick %d: param %q is %g", ErrInvalid, i, name, v))
			}
		}
	}
	return errors.Join(errs...)
}

// Frames returns the number of frames the script plays.
func (s *Script) Frames() int {
	n := 0
	for i := range s.Ticks {
		n += s.Ticks[i].Times()
	}
	return n
}

// Duration returns the total time of the script in seconds.
func (s *Script) Duration() float64 {
	d := 0.0
	for i := range s.Ticks {
		d += s.Ticks[i].DT * float64(s.Ticks[i].Times())
	}
	return d
}

// Player plays a [Script] on a [scene.Renderer], one frame per step.
type Player struct {
	Script   *Script
	Renderer *scene.Renderer

	// tick and rep are the position of the next frame.
	tick, rep int

	// frame is the number of frames played.
	frame int
}

// NewPlayer returns a new player of the script on the renderer.
func NewPlayer(s *Script, r *scene.Renderer) *Player {
	return &Player{Script: s, Renderer: r}
}

// Frame returns the number of frames played so far.
func (p *Player) Frame() int {
	return p.frame
}

// Done returns whether all frames have been played.
func (p *Player) Done() bool {
	return p.tick >= len(p.Script.Ticks)
}

// Rewind restarts the script from the first tick. The renderer keeps
// the parameter values already applied.
func (p *Player) Rewind() {
	p.tick, p.rep, p.frame = 0, 0, 0
}

// Step updates the renderer with the next frame of the script. It
// returns false without updating when the script is done.
func (p *Player) Step() bool {
	if p.Done() {
		return false
	}
	t := &p.Script.Ticks[p.tick]
	var params map[string]float64
	if p.rep == 0 {
		params = t.Params
		if p.tick == 0 && len(p.Script.Start) > 0 {
			params = merge(p.Script.Start, t.Params)
		}
	}
	p.Renderer.Update(t.DT, params)
	p.frame++
	p.rep++
	if p.rep >= t.Times() {
		p.tick++
		p.rep = 0
	}
	return true
}

// Play plays the rest of the script, calling fn after each frame is
// updated. It stops at the first error returned by fn.
func (p *Player) Play(fn func(frame int) error) error {
	for p.Step() {
		if err := fn(p.frame - 1); err != nil {
			return err
		}
	}
	slog.Debug("pose played", "script", p.Script.Name, "frames", p.frame, "elapsed", p.Renderer.Elapsed())
	return nil
}

// merge returns the union of the maps, with values of b winning.
func merge(a, b map[string]float64) map[string]float64 {
	m := make(map[string]float64, len(a)+len(b))
	maps.Copy(m, a)
	maps.Copy(m, b)
	return m
}
