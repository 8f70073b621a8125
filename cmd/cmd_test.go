// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/robobenjie/skifreeordie-sub000/base/iox/imagex"
	"github.com/robobenjie/skifreeordie-sub000/base/iox/tomlx"
	"github.com/robobenjie/skifreeordie-sub000/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	c := &Config{}
	c.Defaults()
	c.Script = filepath.Join("testdata", "skier.yaml")
	c.Output = t.TempDir()
	return c
}

func TestRenderPNG(t *testing.T) {
	c := testConfig(t)
	n, err := Render(c)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	bg, err := config.Defaults().Background()
	require.NoError(t, err)
	for i := range n {
		img, f, err := imagex.Open(c.Filename(i))
		require.NoError(t, err)
		assert.Equal(t, imagex.PNG, f)
		assert.Equal(t, 320, img.Bounds().Dx())
		assert.Equal(t, 240, img.Bounds().Dy())

		drawn := 0
		rgba := imagex.AsRGBA(img)
		for y := range 240 {
			for x := range 320 {
				if rgba.RGBAAt(x, y) != bg {
					drawn++
				}
			}
		}
		assert.Greater(t, drawn, 500, "frame %d", i)
		// the corners stay clear
		assert.Equal(t, bg, rgba.RGBAAt(0, 0))
		assert.Equal(t, bg, rgba.RGBAAt(319, 239))
	}
}

func TestRenderSVGFrame(t *testing.T) {
	c := testConfig(t)
	c.Format = "svg"
	c.Frame = 2
	n, err := Render(c)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	b, err := os.ReadFile(c.Filename(2))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<svg"))
	assert.Contains(t, string(b), "linearGradient")
	assert.NoFileExists(t, c.Filename(0))
}

func TestRenderErrors(t *testing.T) {
	c := testConfig(t)
	c.Format = "xcf"
	_, err := Render(c)
	assert.Error(t, err)

	c = testConfig(t)
	c.Frame = 4
	_, err = Render(c)
	assert.ErrorContains(t, err, "out of range")

	c = testConfig(t)
	c.Script = filepath.Join("testdata", "missing.yaml")
	_, err = Render(c)
	assert.ErrorIs(t, err, os.ErrNotExist)

	c = testConfig(t)
	c.Settings = filepath.Join(c.Output, "bad.toml")
	require.NoError(t, os.WriteFile(c.Settings, []byte("layers = [\"body\"]\n"), 0o644))
	_, err = Render(c)
	assert.ErrorIs(t, err, config.ErrUnknownLayer)
}

func TestWriteConfig(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteConfig(&b))
	assert.Contains(t, b.String(), "[camera]")

	s := &config.Settings{}
	require.NoError(t, tomlx.ReadBytes(s, b.Bytes()))
	assert.Equal(t, config.Defaults(), s)

	fn := filepath.Join(t.TempDir(), "skirender.toml")
	require.NoError(t, SaveConfig(fn))
	s, err := config.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), s)
}

func TestWatch(t *testing.T) {
	c := testConfig(t)
	script, err := os.ReadFile(c.Script)
	require.NoError(t, err)
	c.Script = filepath.Join(c.Output, "skier.yaml")
	require.NoError(t, os.WriteFile(c.Script, script, 0o644))
	c.Output = filepath.Join(c.Output, "frames")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	renders := make(chan int, 4)
	stopped := make(chan error, 1)
	go func() {
		stopped <- Watch(ctx, c, func(n int, err error) {
			assert.NoError(t, err)
			renders <- n
		})
	}()

	wait := func() int {
		select {
		case n := <-renders:
			return n
		case <-time.After(10 * time.Second):
			t.Fatal("timed out waiting for render")
		}
		return 0
	}
	assert.Equal(t, 4, wait())

	// add a tick, which adds a frame
	more := append(script, []byte("  - dt: 0.0333\n")...)
	require.NoError(t, os.WriteFile(c.Script, more, 0o644))
	assert.Equal(t, 5, wait())
	assert.FileExists(t, c.Filename(4))

	cancel()
	select {
	case err := <-stopped:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("watch did not stop")
	}
}
