// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pose

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/camera"
	"github.com/robobenjie/skifreeordie-sub000/frame"
	"github.com/robobenjie/skifreeordie-sub000/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wave = `
name: wave
start:
  slide: 2
ticks:
  - dt: 0.5
    params:
      spin: 1.5707963267948966
  - dt: 0.25
    repeat: 3
    params:
      slide: 4
  - dt: 0
`

func newScene() (*scene.Renderer, frame.Frame) {
	r := scene.NewRenderer(camera.Default())
	tip := r.NewFrame().DynamicRotateAboutZ("spin", 0).DynamicTranslate("slide", 1, 0, 0)
	return r, tip
}

func TestRead(t *testing.T) {
	s, err := Read(strings.NewReader(wave))
	require.NoError(t, err)
	assert.Equal(t, "wave", s.Name)
	require.Len(t, s.Ticks, 3)
	assert.Equal(t, 3, s.Ticks[1].Times())
	assert.Equal(t, 1, s.Ticks[2].Times())
	assert.Equal(t, 5, s.Frames())
	assert.InDelta(t, 1.25, s.Duration(), 1e-12)

	_, err = Read(strings.NewReader("ticks:\n  - dt: 1\n    bogus: 2\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	_, err := Read(strings.NewReader("ticks:\n  - dt: -1\n  - dt: 1\n    repeat: -2\n"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "tick 0: dt -1")
	assert.ErrorContains(t, err, "tick 1: repeat -2")

	s := &Script{Ticks: []Tick{{DT: 1, Params: map[string]float64{"x": math.NaN()}}}}
	assert.ErrorIs(t, s.Validate(), ErrInvalid)
}

func TestPlayer(t *testing.T) {
	s, err := Read(strings.NewReader(wave))
	require.NoError(t, err)
	r, tip := newScene()
	p := NewPlayer(s, r)

	require.True(t, p.Step())
	// start values apply with the first tick
	assert.InDelta(t, 0, tip.ToWorld(mgl64.Vec3{})[0], 1e-9)
	assert.InDelta(t, 2, tip.ToWorld(mgl64.Vec3{})[1], 1e-9)

	var frames []int
	require.NoError(t, p.Play(func(frame int) error {
		frames = append(frames, frame)
		assert.InDelta(t, 4, tip.ToWorld(mgl64.Vec3{})[1], 1e-9)
		return nil
	}))
	assert.Equal(t, []int{1, 2, 3, 4}, frames)
	assert.True(t, p.Done())
	assert.False(t, p.Step())
	assert.Equal(t, 5, p.Frame())
	assert.InDelta(t, s.Duration(), r.Elapsed(), 1e-12)

	p.Rewind()
	assert.False(t, p.Done())
	assert.Equal(t, 0, p.Frame())
}

func TestPlayStopsOnError(t *testing.T) {
	s, err := Read(strings.NewReader(wave))
	require.NoError(t, err)
	r, _ := newScene()
	p := NewPlayer(s, r)
	stop := errors.New("stop")
	err = p.Play(func(frame int) error {
		if frame == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, p.Frame())
}

func TestSaveOpen(t *testing.T) {
	s, err := Read(strings.NewReader(wave))
	require.NoError(t, err)
	fn := filepath.Join(t.TempDir(), "wave.yaml")
	require.NoError(t, s.Save(fn))
	got, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	s.Name = ""
	require.NoError(t, s.Save(fn))
	got, err = Open(fn)
	require.NoError(t, err)
	assert.Equal(t, fn, got.Name)
}
