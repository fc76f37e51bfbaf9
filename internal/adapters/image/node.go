package image

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// DefaultDir is where the assembled image artifacts land, relative to the
// workspace root.
const DefaultDir = "kiln-out/image"

// NodeID is the unique identifier for the image assembler Graft node.
const NodeID graft.ID = "adapter.image_assembler"

func init() {
	graft.Register(graft.Node[ports.ImageAssembler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ImageAssembler, error) {
			return NewAssembler(DefaultDir), nil
		},
	})
}
