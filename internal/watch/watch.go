// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     watch
// Description: Re-runs an action whenever a source file changes on disk
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
	mdwlog "github.com/msto63/minilang/foundation/core/log"
)

// DefaultDebounce is the quiet period after the last event before the action
// runs
const DefaultDebounce = 100 * time.Millisecond

// Options configures a Watcher
type Options struct {
	Debounce time.Duration
	Logger   *mdwlog.Logger
}

// Watcher observes one file. The parent directory is watched instead of the
// file itself so that editors which save by rename keep being observed.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *mdwlog.Logger
	fs       *fsnotify.Watcher
}

// New creates a watcher for path
func New(path string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, watchError(err, "cannot resolve path", path)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, watchError(err, "cannot create file watcher", path)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, watchError(err, "cannot watch directory", path)
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.NewNop()
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		logger:   logger.WithField("component", "watch"),
		fs:       fs,
	}, nil
}

// Run calls action once immediately and again after every debounced change
// of the file until ctx is done. Run closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, action func(context.Context)) error {
	defer w.fs.Close()

	action(ctx)

	// fire is nil while no change is pending
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Trace("File event", mdwlog.Fields{"op": ev.Op.String(), "path": ev.Name})
			fire = time.After(w.debounce)

		case <-fire:
			fire = nil
			w.logger.Debug("Source changed", mdwlog.Fields{"path": w.path})
			action(ctx)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			return watchError(err, "file watcher failed", w.path)
		}
	}
}

// Close releases the watcher without running it
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Path returns the absolute path of the observed file
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func watchError(err error, msg, path string) error {
	return mdwerror.Wrap(err, msg).
		WithCode(mdwerror.CodeWatchFailed).
		WithOperation("watch.Run").
		WithDetail("path", path)
}
