package devshell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// DefaultStateDir keeps the shell cache and provision markers, relative to
// the workspace root.
const DefaultStateDir = ".kiln"

// NodeID is the unique identifier for the shell composer Graft node.
const NodeID graft.ID = "adapter.shell_composer"

func init() {
	graft.Register(graft.Node[ports.ShellComposer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ShellComposer, error) {
			return NewComposer(DefaultStateDir), nil
		},
	})
}
