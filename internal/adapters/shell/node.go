package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylo/internal/adapters/logger"
	"go.trai.ch/stylo/internal/core/ports"
)

// NodeID is the unique identifier for the post-processor Graft node.
const NodeID graft.ID = "adapter.post_processor"

func init() {
	graft.Register(graft.Node[ports.PostProcessor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PostProcessor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProcessor(log), nil
		},
	})
}
