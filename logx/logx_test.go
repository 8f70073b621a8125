// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestNewLogger(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()

	UserLevel = slog.LevelWarn
	var b bytes.Buffer
	lg := NewLogger(&b)
	lg.Info("hidden")
	lg.Warn("shown", "layer", 2)
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "shown")
	assert.Contains(t, b.String(), "layer=2")
}
