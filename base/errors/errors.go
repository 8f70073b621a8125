// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors extends the standard library errors package with
// helpers that log errors through [slog] where they are not returned.
// It can be imported in place of the standard library package.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join returns an error wrapping the non-nil errors, or nil if
// there are none.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Log logs err at error level with its caller if it is non-nil,
// and returns it:
//
//	return errors.Log(r.Save(fn))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error(), "caller", caller())
	}
	return err
}

// Log1 returns v after logging err as [Log] does:
//
//	c := errors.Log1(config.ParseHex(s))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error(), "caller", caller())
	}
	return v
}

// caller returns the function and position that called the
// function calling caller.
func caller() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
