package watch

// State is the lifecycle state of the watch loop for one source root.
type State string

const (
	// StateStarting means the watcher is being created and subscribed.
	StateStarting State = "starting"
	// StateReady means the root is idle and waiting for events.
	StateReady State = "ready"
	// StateRecompiling means a batch of changes is being processed.
	StateRecompiling State = "recompiling"
	// StateClosing means shutdown was requested and the watcher is being released.
	StateClosing State = "closing"
	// StateClosed is terminal.
	StateClosed State = "closed"
)
