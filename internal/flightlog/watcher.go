package flightlog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"spltrack/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches the burst of writes editors and exporters emit.
const DefaultDebounce = 300 * time.Millisecond

// Watcher re-runs the analysis whenever one export file changes on disk.
// The parent directory is watched so atomic rename-over saves are seen.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	analyzer    *Analyzer
	path        string
	dir         string
	name        string
	onChange    func(Outcome)
	pendingAt   time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	closeOnce   sync.Once

	stats WatcherStats
}

// WatcherStats tracks watcher activity.
type WatcherStats struct {
	Events        int
	Runs          int
	Errors        int
	LastEventTime time.Time
	LastEventType string
}

// NewWatcher creates a watcher for path. onChange is called from the watcher
// goroutine after every debounced change.
func NewWatcher(path string, analyzer *Analyzer, debounce time.Duration, onChange func(Outcome)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		watcher:     fw,
		analyzer:    analyzer,
		path:        abs,
		dir:         filepath.Dir(abs),
		name:        filepath.Base(abs),
		onChange:    onChange,
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking. The watcher only counts as
// running once the directory is registered and the event loop is started.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}
	w.running = true
	go w.run(ctx)

	logging.Watch("watching %s", w.path)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit. It is safe to
// call more than once and without a prior Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}

	w.closeOnce.Do(func() {
		if err := w.watcher.Close(); err != nil {
			logging.WatchError("error closing watcher: %v", err)
		}
		logging.WatchDebug("watcher stopped")
	})
}

// Stats returns a snapshot of watcher activity.
func (w *Watcher) Stats() WatcherStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounceDur / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	debounceTicker := time.NewTicker(tick)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.WatchDebug("context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.WatchError("watcher error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-debounceTicker.C:
			w.processDebounced(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != w.name {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		return
	}

	logging.WatchDebug("%s event for %s", eventType, event.Name)

	now := time.Now()
	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEventTime = now
	w.stats.LastEventType = eventType
	w.pendingAt = now
	w.mu.Unlock()
}

func (w *Watcher) processDebounced(ctx context.Context) {
	w.mu.Lock()
	if w.pendingAt.IsZero() || time.Since(w.pendingAt) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pendingAt = time.Time{}
	w.stats.Runs++
	w.mu.Unlock()

	out := w.analyzer.Run(ctx, w.path)
	if out.Err != nil {
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
	}
	if w.onChange != nil {
		w.onChange(out)
	}
}
