// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default logging setup used by
// the renderer command line tools, built on [log/slog].
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through command line flags. It defaults to [slog.LevelInfo],
// or [slog.LevelDebug] when built with the "debug" tag.
var UserLevel = defaultUserLevel

// SetDefaultLogger sets the default [slog] logger to a text handler
// writing to stderr, filtered by [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// NewLogger returns a new text [slog.Logger] writing to the given writer,
// filtered by [UserLevel].
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel}))
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags are evaluated in the order vv, v, q,
// and the first that is true is used.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
