package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the revision resolver Graft node.
const NodeID graft.ID = "adapter.git.resolver"

func init() {
	graft.Register(graft.Node[ports.RevisionResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RevisionResolver, error) {
			return NewResolver(), nil
		},
	})
}
