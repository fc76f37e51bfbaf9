package lock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the lock resolver Graft node.
const NodeID graft.ID = "adapter.lock.resolver"

func init() {
	graft.Register(graft.Node[ports.LockResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LockResolver, error) {
			return NewResolver(), nil
		},
	})
}
