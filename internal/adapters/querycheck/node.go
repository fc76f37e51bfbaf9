package querycheck

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the query validator Graft node.
const NodeID graft.ID = "adapter.query_validator"

func init() {
	graft.Register(graft.Node[ports.QueryValidator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.QueryValidator, error) {
			return NewValidator(), nil
		},
	})
}
