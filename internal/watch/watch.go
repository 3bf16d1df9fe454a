// Package watch re-runs a callback whenever a config file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/dofcalc/pkg/log"
)

// Config holds configuration options for a Watcher.
type Config struct {
	// DebounceDelay is how long to wait after the last change before
	// firing. Editors often write a file several times per save.
	// Default: 100 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DebounceDelay: 100 * time.Millisecond}
}

// Watcher monitors one file. The parent directory is watched rather than
// the file itself so that editors which save by rename are still seen.
type Watcher struct {
	path     string
	onChange func(context.Context)
	delay    time.Duration
	logger   log.Logger

	mu       sync.Mutex
	debounce *time.Timer
	fire     chan struct{}
}

// New creates a Watcher calling onChange after path is written or created.
// onChange runs on the goroutine that called Run, never concurrently with
// itself.
func New(path string, onChange func(context.Context), cfg Config, logger log.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultConfig().DebounceDelay
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		delay:    cfg.DebounceDelay,
		logger:   logger,
		fire:     make(chan struct{}, 1),
	}
}

// Run watches until ctx is cancelled. It returns nil on cancellation and an
// error if the watch could not be set up.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.stopTimer()

	w.logger.Info("watching config", log.String("path", w.path))

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule()

		case <-w.fire:
			w.logger.Debug("config changed", log.String("path", w.path))
			w.onChange(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

// schedule (re)arms the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		select {
		case w.fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}
