// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tick struct {
	DT     float64            `yaml:"dt"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

func TestRoundTripFile(t *testing.T) {
	ticks := []tick{{DT: 0.1, Params: map[string]float64{"lean": 0.2}}, {DT: 0.1}}
	fn := filepath.Join(t.TempDir(), "pose.yaml")
	require.NoError(t, Save(ticks, fn))

	var got []tick
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, ticks, got)
}

func TestReadBytes(t *testing.T) {
	var got []tick
	require.NoError(t, ReadBytes(&got, []byte("- dt: 0.5\n  params:\n    shoulder_l: 1.5\n")))
	require.Len(t, got, 1)
	assert.Equal(t, 0.5, got[0].DT)
	assert.Equal(t, 1.5, got[0].Params["shoulder_l"])

	assert.Error(t, ReadBytes(&got, []byte("- dt: 0.5\n  bogus: 1\n")))
}

func TestWriteBytes(t *testing.T) {
	b, err := WriteBytes(tick{DT: 2})
	require.NoError(t, err)
	assert.Equal(t, "dt: 2\n", string(b))
}
