package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// PortHasherNodeID binds the concrete hasher to the ports.Hasher interface.
	PortHasherNodeID graft.ID = "adapter.fs.hasher_port"
	// FilterNodeID is the unique identifier for the source filter Graft node.
	FilterNodeID graft.ID = "adapter.fs.filter"
)

func init() {
	// Walker Node (concrete type needed by the Filter)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Hasher Node (concrete type needed by the Filter)
	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	// ports.Hasher binding
	graft.Register(graft.Node[ports.Hasher]{
		ID:        PortHasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return graft.Dep[*Hasher](ctx)
		},
	})

	// Filter Node
	graft.Register(graft.Node[ports.SourceFilter]{
		ID:        FilterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, HasherNodeID},
		Run: func(ctx context.Context) (ports.SourceFilter, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewFilter(walker, hasher), nil
		},
	})
}
