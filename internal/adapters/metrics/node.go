package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylo/internal/core/ports"
)

const (
	// RecorderNodeID is the unique identifier for the shared Prometheus recorder Graft node.
	RecorderNodeID graft.ID = "adapter.metrics.recorder"
	// NodeID is the unique identifier for the metrics Graft node.
	NodeID graft.ID = "adapter.metrics"
	// ServerNodeID is the unique identifier for the metrics endpoint Graft node.
	ServerNodeID graft.ID = "adapter.metrics.server"
)

func init() {
	graft.Register(graft.Node[*PrometheusRecorder]{
		ID:        RecorderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*PrometheusRecorder, error) {
			return NewPrometheusRecorder(nil), nil
		},
	})

	graft.Register(graft.Node[ports.Metrics]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RecorderNodeID},
		Run: func(ctx context.Context) (ports.Metrics, error) {
			return graft.Dep[*PrometheusRecorder](ctx)
		},
	})

	graft.Register(graft.Node[ports.MetricsServer]{
		ID:        ServerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RecorderNodeID},
		Run: func(ctx context.Context) (ports.MetricsServer, error) {
			return graft.Dep[*PrometheusRecorder](ctx)
		},
	})
}
