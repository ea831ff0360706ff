// Package watch re-validates an exercise whenever its source changes.
// Events are debounced so a burst of editor writes triggers one run.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lessonpath/pathcheck/pkg/models"
)

// DefaultDebounce is the quiet period after the last change before a
// re-validation fires.
const DefaultDebounce = 500 * time.Millisecond

// skipDirs are directories never watched: build output and VCS noise
// would retrigger validation endlessly.
var skipDirs = map[string]bool{
	".git":         true,
	"target":       true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	".pathcheck":   true,
}

// Watcher re-runs a validation callback when project files change.
type Watcher struct {
	ref      models.ProjectRef
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New creates a watcher over the project's directory tree. A zero
// debounce means DefaultDebounce.
func New(ref models.ProjectRef, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		ref:      ref,
		debounce: debounce,
		watcher:  fsWatcher,
	}

	if err := w.addTree(ref.RootPath); err != nil {
		fsWatcher.Close()
		return nil, err
	}
	return w, nil
}

// addTree registers the project directory and its subdirectories,
// skipping build output.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirs[d.Name()] {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

// Run blocks, invoking validate once immediately and again after each
// debounced change, until the context is cancelled.
func (w *Watcher) Run(ctx context.Context, validate func(context.Context)) error {
	validate(ctx)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}

			// New directories must be added to the watch set.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !skipDirs[filepath.Base(event.Name)] {
					w.watcher.Add(event.Name)
				}
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			validate(ctx)

		case <-w.watcher.Errors:
			// Keep watching; a transient error should not end the session.
		}
	}
}

// relevant filters out events from ignored directories and temp files.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	for _, part := range strings.Split(filepath.ToSlash(event.Name), "/") {
		if skipDirs[part] {
			return false
		}
	}

	base := filepath.Base(event.Name)
	if strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return false
	}
	return true
}

// Close releases the underlying file watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
