package ports

import "context"

// WatchEventKind classifies a watcher notification.
type WatchEventKind uint8

const (
	// WatchChanged indicates a file was created or written.
	WatchChanged WatchEventKind = iota
	// WatchRemoved indicates a file was removed or renamed away.
	WatchRemoved
	// WatchReady indicates the recursive subscription is established.
	WatchReady
)

// WatchEvent is a single notification from a Watcher.
type WatchEvent struct {
	// Path is the absolute path of the file that changed. It is empty for WatchReady.
	Path string
	Kind WatchEventKind
}

// Watcher defines the interface for watching file system changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given root directory recursively.
	// It returns an error if the watcher fails to start.
	Start(ctx context.Context, root string) error
	// Events returns the notification channel. It is closed when the watcher stops.
	Events() <-chan WatchEvent
	// Close stops the watcher. It returns only after every internal resource is released.
	Close() error
}

// WatcherFactory creates one Watcher per source root.
type WatcherFactory interface {
	NewWatcher() (Watcher, error)
}
