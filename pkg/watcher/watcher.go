// Package watcher reports changes to a set of files, coalescing bursts of
// events into one callback per file.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches files for changes and triggers callbacks
type Watcher struct {
	fs        *fsnotify.Watcher
	debounce  time.Duration
	mu        sync.Mutex
	callbacks map[string]func(string)
	dirs      map[string]bool
	timers    map[string]*time.Timer
	closed    bool

	// OnError receives errors from the underlying watcher
	OnError func(error)
}

// New creates a watcher that waits debounce after the last event for a
// file before calling back
func New(debounce time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		fs:        fs,
		debounce:  debounce,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]bool),
		timers:    make(map[string]*time.Timer),
		OnError: func(err error) {
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		},
	}, nil
}

// Watch registers callback for each file. The containing directories are
// watched so that files replaced by rename are still tracked.
func (w *Watcher) Watch(files []string, callback func(string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if !w.dirs[dir] {
			if err := w.fs.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			w.dirs[dir] = true
		}

		w.callbacks[absPath] = callback
	}

	return nil
}

// Start begins delivering events in a background goroutine
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					w.handle(filepath.Clean(event.Name))
				}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				if w.OnError != nil {
					w.OnError(err)
				}
			}
		}
	}()
}

// handle restarts the debounce timer of a watched file
func (w *Watcher) handle(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	callback, ok := w.callbacks[path]
	if !ok {
		return
	}

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher and discards pending callbacks
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	return w.fs.Close()
}
