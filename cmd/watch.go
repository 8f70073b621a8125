// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchLag is how long the watcher waits after the last change to
// a watched file before rendering again.
var WatchLag = 100 * time.Millisecond

// Watch renders the script and then renders it again whenever the
// script or settings file changes, until the context is done.
// Each render result is passed to done when it is non-nil, and
// logged otherwise.
func Watch(ctx context.Context, c *Config, done func(n int, err error)) error {
	if done == nil {
		done = func(n int, err error) {
			if err != nil {
				slog.Error("render failed", "err", err)
			}
		}
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// editors often replace files on save, so the directories are watched
	files := map[string]bool{}
	for _, fn := range []string{c.Script, c.Settings} {
		if fn == "" {
			continue
		}
		abs, err := filepath.Abs(fn)
		if err != nil {
			return err
		}
		files[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	done(Render(c))
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(event.Name)
			if !files[abs] || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("watch", "event", event.Op.String(), "file", event.Name)
			fire = time.After(WatchLag)
		case <-fire:
			fire = nil
			done(Render(c))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "err", err)
		}
	}
}
