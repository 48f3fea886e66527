// File: watch.go
// Title: Configuration File Watching
// Description: Reloads the configuration when its file changes. The parent
//              directory is watched with fsnotify so editors that replace the
//              file on save are picked up, and bursts of events are debounced
//              into a single reload.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial polling implementation of file watching
// - 2025-08-02 v0.2.0: fsnotify based watcher with debounce and context cancel

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	chronerror "github.com/msto63/chronal/core/error"
)

// DefaultDebounce is the quiet period before a changed file is reloaded
const DefaultDebounce = 250 * time.Millisecond

// ChangeHandler is called after a reload. old is a snapshot of the previous
// configuration, current is the live instance. err is set when the changed
// file could not be parsed, in which case the previous values are kept.
type ChangeHandler func(old, current *Config, err error)

// Reload re-reads the backing file and replaces the stored values
func (c *Config) Reload() error {
	if c.filePath == "" {
		return chronerror.New("configuration was not loaded from a file").
			WithCode(chronerror.CodeMissingConfig).
			WithOperation("config.Reload")
	}

	fresh, err := LoadWithOptions(c.filePath, LoadOptions{
		Format:    c.format,
		EnvPrefix: c.envPrefix,
		Defaults:  c.defaults,
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.data = fresh.data
	c.mu.Unlock()
	return nil
}

// snapshot returns a detached copy of the configuration
func (c *Config) snapshot() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &Config{
		data:      mergeDefaults(nil, c.data),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
		defaults:  c.defaults,
	}
}

// Watch reloads the configuration whenever its file is written, created or
// renamed into place, and calls handler after each reload. It returns once the
// watcher is installed; watching stops when ctx is cancelled.
func (c *Config) Watch(ctx context.Context, handler ChangeHandler) error {
	return c.WatchWithDebounce(ctx, DefaultDebounce, handler)
}

// WatchWithDebounce is Watch with a custom debounce delay
func (c *Config) WatchWithDebounce(ctx context.Context, delay time.Duration, handler ChangeHandler) error {
	if c.filePath == "" {
		return chronerror.New("file path required for watching").
			WithCode(chronerror.CodeMissingConfig).
			WithOperation("config.Watch")
	}

	target, err := filepath.Abs(c.filePath)
	if err != nil {
		return chronerror.Wrap(err, "resolving config path").
			WithCode(chronerror.CodeConfigError).
			WithOperation("config.Watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return chronerror.Wrap(err, "creating file watcher").
			WithCode(chronerror.CodeConfigError).
			WithOperation("config.Watch")
	}

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return chronerror.Wrap(err, "watching config directory").
			WithCode(chronerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", c.filePath)
	}

	go c.watchLoop(ctx, watcher, target, delay, handler)
	return nil
}

func (c *Config) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, delay time.Duration, handler ChangeHandler) {
	defer func() { _ = watcher.Close() }()

	var (
		mu            sync.Mutex
		debounceTimer *time.Timer
	)
	defer func() {
		mu.Lock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		mu.Unlock()
	}()

	fire := func() {
		if ctx.Err() != nil {
			return
		}
		old := c.snapshot()
		err := c.Reload()
		if handler != nil {
			handler(old, c, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(target) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			mu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(delay, fire)
			mu.Unlock()
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
