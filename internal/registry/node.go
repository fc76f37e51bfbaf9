package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/devshell" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/lock"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/derivation"
)

// NodeID is the unique identifier for the registry evaluator Graft node.
const NodeID graft.ID = "engine.registry_evaluator"

func init() {
	graft.Register(graft.Node[*Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			derivation.NodeID,
			lock.NodeID,
			devshell.NodeID,
		},
		Run: func(ctx context.Context) (*Evaluator, error) {
			builder, err := graft.Dep[*derivation.Builder](ctx)
			if err != nil {
				return nil, err
			}
			lockResolver, err := graft.Dep[ports.LockResolver](ctx)
			if err != nil {
				return nil, err
			}
			composer, err := graft.Dep[ports.ShellComposer](ctx)
			if err != nil {
				return nil, err
			}
			return NewEvaluator(builder, lockResolver, composer), nil
		},
	})
}
