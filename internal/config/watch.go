// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// LIVE RELOAD
// =============================================================================

// WatchDebounce is how long Watch waits after the last change before reloading.
const WatchDebounce = 100 * time.Millisecond

// Watch follows the config file at path and calls onChange with the freshly
// loaded config after each burst of writes. Files that fail to load or
// validate are reported to onError (if non-nil) and the previous config stays
// in effect. Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename keep being followed.
func Watch(ctx context.Context, path string, onChange func(*Config), onError func(error)) error {
	if onChange == nil {
		return fmt.Errorf("config watch: nil onChange")
	}
	if onError == nil {
		onError = func(error) {}
	}

	path = filepath.Clean(path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("config watch %s: %w", path, err)
	}

	// The debounce timer is created on the first relevant event; until then
	// fire is nil and never selected.
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(WatchDebounce)
				fire = timer.C
			} else {
				timer.Reset(WatchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(err)

		case <-fire:
			cfg, err := LoadFromPath(path)
			if err != nil {
				onError(err)
				continue
			}
			onChange(cfg)
		}
	}
}
