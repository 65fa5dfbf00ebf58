package scss

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylo/internal/core/ports"
)

// NodeID is the unique identifier for the transformer Graft node.
const NodeID graft.ID = "adapter.scss"

func init() {
	graft.Register(graft.Node[ports.Transformer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Transformer, error) {
			return NewCompiler(), nil
		},
	})
}
