package storage

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// eventChannelBuffer is the size of the watch event channel.
	eventChannelBuffer = 16

	defaultDebounceDelay = 500 * time.Millisecond
)

// WatchConfig configures data file watching.
type WatchConfig struct {
	// Enabled controls whether the data file is watched for external edits.
	Enabled bool `yaml:"enabled"`

	// DebounceDelay is how long to wait for more changes before reloading.
	DebounceDelay string `yaml:"debounce_delay"`
}

// DefaultWatchConfig returns default watch configuration.
func DefaultWatchConfig() WatchConfig {
	return WatchConfig{
		Enabled:       false,
		DebounceDelay: "500ms",
	}
}

// GetDebounceDelay returns the debounce delay as a duration.
func (c *WatchConfig) GetDebounceDelay() time.Duration {
	if c.DebounceDelay == "" {
		return defaultDebounceDelay
	}
	d, err := time.ParseDuration(c.DebounceDelay)
	if err != nil || d <= 0 {
		return defaultDebounceDelay
	}
	return d
}

// WatchOperation indicates the type of file operation.
type WatchOperation string

// WatchOpModify and WatchOpDelete enumerate data file changes.
const (
	WatchOpModify WatchOperation = "modify"
	WatchOpDelete WatchOperation = "delete"
)

// WatchEvent reports an external change to the data file.
type WatchEvent struct {
	Path      string
	Operation WatchOperation
}

// Watcher emits an event when the data file changes on disk in a way the
// store did not cause itself.
type Watcher struct {
	config  WatchConfig
	store   *JSONStore
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	pendingMu sync.Mutex
	pending   fsnotify.Op
	dirty     bool
	lastEvent time.Time

	events chan WatchEvent

	droppedEvents atomic.Int64
}

// NewWatcher creates a watcher for the store's data file.
func NewWatcher(config WatchConfig, store *JSONStore, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		config:  config,
		store:   store,
		watcher: fsw,
		logger:  logger,
		events:  make(chan WatchEvent, eventChannelBuffer),
	}, nil
}

// Events returns the channel of watch events. It is closed when the
// watcher stops.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start watches the directory holding the data file. Editors often
// replace files rather than write them in place, so the directory is
// watched instead of the file.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.store.Path())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Data file watcher started",
		"path", w.store.Path(),
		"debounce", w.config.GetDebounceDelay())

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.config.GetDebounceDelay())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.store.Path() {
		return
	}

	w.pendingMu.Lock()
	w.pending = event.Op
	w.dirty = true
	w.lastEvent = time.Now()
	w.pendingMu.Unlock()

	w.logger.Debug("Data file change detected", "op", event.Op.String())
}

func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	// Wait until the file has been quiet for a full debounce period.
	if !w.dirty || time.Since(w.lastEvent) < w.config.GetDebounceDelay() {
		w.pendingMu.Unlock()
		return
	}
	op := w.pending
	w.dirty = false
	w.pendingMu.Unlock()

	w.logger.Debug("Flushing data file change", "op", op.String())

	event := WatchEvent{Path: w.store.Path()}

	content, err := os.ReadFile(w.store.Path())
	if errors.Is(err, os.ErrNotExist) {
		event.Operation = WatchOpDelete
		w.sendEvent(event)
		return
	}
	if err != nil {
		w.logger.Warn("Failed to read data file for hash check", "error", err)
		return
	}

	// Writes made by the store itself leave the hash unchanged.
	if ContentHash(content) == w.store.LastHash() {
		return
	}

	event.Operation = WatchOpModify
	w.sendEvent(event)
}

func (w *Watcher) sendEvent(event WatchEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event", "path", event.Path, "op", event.Operation)
	default:
		dropped := w.droppedEvents.Add(1)
		w.logger.Warn("Event channel full, dropping event",
			"path", event.Path,
			"total_dropped", dropped)
	}
}

// DroppedEvents returns the number of events dropped due to channel overflow.
func (w *Watcher) DroppedEvents() int64 {
	return w.droppedEvents.Load()
}
