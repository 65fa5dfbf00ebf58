package watch

import (
	"time"
	"unique"
)

// Debouncer coalesces rapid change events into one batch.
//
// It is owned by a single watch loop and is not safe for concurrent use: the loop calls
// Add for every accepted event, selects on C and calls Drain when C fires.
type Debouncer struct {
	window  time.Duration
	pending map[unique.Handle[string]]struct{}
	order   []string
	timer   *time.Timer
}

// NewDebouncer creates a debouncer that fires window after the last Add.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[unique.Handle[string]]struct{}),
	}
}

// Add queues path and restarts the window. Paths keep the order they were first added in.
func (d *Debouncer) Add(path string) {
	handle := unique.Make(path)
	if _, ok := d.pending[handle]; !ok {
		d.pending[handle] = struct{}{}
		d.order = append(d.order, path)
	}

	if d.timer == nil {
		d.timer = time.NewTimer(d.window)
		return
	}
	d.timer.Reset(d.window)
}

// C fires once the window has elapsed without a new Add.
// It returns nil while nothing is pending, which blocks forever in a select.
func (d *Debouncer) C() <-chan time.Time {
	if d.timer == nil || len(d.order) == 0 {
		return nil
	}
	return d.timer.C
}

// Pending returns the number of queued paths.
func (d *Debouncer) Pending() int {
	return len(d.order)
}

// Drain returns the queued paths and clears the batch.
func (d *Debouncer) Drain() []string {
	if d.timer != nil {
		d.timer.Stop()
	}
	paths := d.order
	d.order = nil
	clear(d.pending)
	return paths
}
