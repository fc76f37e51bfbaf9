package derivation

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/cas"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/fs"                  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/git"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/lock"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/querycheck"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/telemetry/progrock"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/toolchain"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the derivation builder Graft node.
const NodeID graft.ID = "engine.derivation_builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.FilterNodeID,
			fs.PortHasherNodeID,
			lock.NodeID,
			git.NodeID,
			querycheck.NodeID,
			toolchain.NodeID,
			cas.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			filter, err := graft.Dep[ports.SourceFilter](ctx)
			if err != nil {
				return nil, err
			}
			lockResolver, err := graft.Dep[ports.LockResolver](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			revision, err := graft.Dep[ports.RevisionResolver](ctx)
			if err != nil {
				return nil, err
			}
			queries, err := graft.Dep[ports.QueryValidator](ctx)
			if err != nil {
				return nil, err
			}
			tc, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.DerivationStore](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(
				filter,
				lockResolver,
				hasher,
				revision,
				queries,
				tc,
				store,
				telemetry,
			), nil
		},
	})
}
