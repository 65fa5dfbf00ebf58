// Package watcher implements recursive file system watching on top of fsnotify.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Watcher        = (*Watcher)(nil)
	_ ports.WatcherFactory = (*Factory)(nil)
)

// shouldSkipDirectories are directories that should not be watched.
var shouldSkipDirectories = map[string]bool{
	".git":              true,
	".jj":               true,
	"node_modules":      true,
	domain.StyloDirName: true,
}

const eventChannelBuffer = 100

// Factory creates one Watcher per source root.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory. Watch errors reported by the OS are logged as warnings.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// NewWatcher creates a new, unstarted watcher.
func (f *Factory) NewWatcher() (ports.Watcher, error) {
	return NewWatcher(f.logger)
}

// Watcher implements file system watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan ports.WatchEvent
	stop      chan struct{}
	done      chan struct{}
	started   atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// NewWatcher creates a new file system watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file system watcher")
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the given root directory recursively.
// A WatchReady event is queued once every directory is subscribed.
func (w *Watcher) Start(ctx context.Context, root string) error {
	if !w.started.CompareAndSwap(false, true) {
		return zerr.With(zerr.New("watcher already started"), "path", root)
	}

	for dir, err := range w.watchRecursively(root) {
		if err == nil {
			err = w.fsWatcher.Add(dir)
		}
		if err != nil {
			close(w.done)
			close(w.events)
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
		}
	}

	w.events <- ports.WatchEvent{Kind: ports.WatchReady}

	go w.processEvents(ctx)

	return nil
}

// Events returns the notification channel. It is closed when the watcher stops.
func (w *Watcher) Events() <-chan ports.WatchEvent {
	return w.events
}

// Close stops the watcher and waits for the event goroutine to exit.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.stop)
		w.closeErr = w.fsWatcher.Close()
		if w.started.Load() {
			<-w.done
		}
	})
	return w.closeErr
}

// watchRecursively walks the directory tree and yields all directories.
// Errors below the root are skipped; an unreadable root is yielded as an error.
func (w *Watcher) watchRecursively(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					yield("", err)
					return filepath.SkipAll
				}
				return nil //nolint:nilerr // skip directories that vanished or cannot be read
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && shouldSkipDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// processEvents converts raw fsnotify events to ports.WatchEvent until the watcher is closed.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.done)
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := w.convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: file system error: " + err.Error())
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
// Newly created directories are subscribed and produce no event of their own.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return ports.WatchEvent{Path: event.Name, Kind: ports.WatchRemoved}, true

	case event.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if !shouldSkipDirectories[info.Name()] {
				for dir, err := range w.watchRecursively(event.Name) {
					if err == nil {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}
			return ports.WatchEvent{}, false
		}
		return ports.WatchEvent{Path: event.Name, Kind: ports.WatchChanged}, true

	case event.Has(fsnotify.Write):
		return ports.WatchEvent{Path: event.Name, Kind: ports.WatchChanged}, true
	}

	return ports.WatchEvent{}, false
}
