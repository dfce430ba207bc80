// Package watcher re-runs generation when name-list files change on disk.
package watcher

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// Watcher watches a fixed set of name-list files and invokes a callback
// when any of them is rewritten. Rapid consecutive writes (editors often
// truncate then write) are debounced into a single invocation.
type Watcher struct {
	watcher        *fsnotify.Watcher
	callback       func() error
	logger         hclog.Logger
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	done           chan struct{}
}

// New creates a watcher over paths. The callback runs after each detected
// change; its errors are logged, not fatal.
func New(paths []string, callback func() error, logger hclog.Logger) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	for _, path := range paths {
		if err := fsw.Add(path); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	return &Watcher{
		watcher:        fsw,
		callback:       callback,
		logger:         logger,
		debouncePeriod: 500 * time.Millisecond,
		done:           make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Wait blocks until the watcher is stopped.
func (w *Watcher) Wait() {
	<-w.done
}

// Stop stops watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only rerun on Write or Create; Chmod and Remove churn is noise.
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			w.logger.Debug("name list changed", "file", event.Name, "op", event.Op.String())
			w.scheduleRun()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) scheduleRun() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.callback(); err != nil {
			w.logger.Error("regeneration failed", "error", err)
		}
	})
}
