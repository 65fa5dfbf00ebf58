package ports

import (
	"context"
	"time"
)

// Metrics records build and watch activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveCompile records one unit compile under root.
	ObserveCompile(root string, d time.Duration, ok bool)
	// ObserveInvalidation records a change batch and the number of recompiles it caused.
	ObserveInvalidation(root string, recompiles int)
	// SetTrackedFiles reports the number of files in the dependency graph.
	SetTrackedFiles(n int)
}

// MetricsServer exposes recorded metrics over HTTP.
type MetricsServer interface {
	// Serve blocks until ctx is done or the listener fails.
	Serve(ctx context.Context, addr string) error
}
