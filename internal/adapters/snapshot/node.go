package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports"
)

// NodeID is the unique identifier for the debug writer Graft node.
const NodeID graft.ID = "adapter.debug_writer"

func init() {
	graft.Register(graft.Node[ports.DebugWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DebugWriter, error) {
			return NewStore(domain.DefaultDebugPath()), nil
		},
	})
}
