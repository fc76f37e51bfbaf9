package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// ShellEnv is a composed interactive environment.
type ShellEnv struct {
	// ID is the deterministic identifier of the package set.
	ID string

	// Dir is the on-disk state directory of this shell.
	Dir string

	// Env are "KEY=VALUE" pairs for the interactive session.
	Env []string

	// Provisioned reports whether the one-time provision step ran during
	// composition (false when the marker already existed).
	Provisioned bool
}

// ShellComposer assembles the interactive development environment: the lock
// dependency set plus developer-only tooling. It is not part of the
// reproducible artifact chain.
//
//go:generate go run go.uber.org/mock/mockgen -source=shell.go -destination=mocks/mock_shell.go -package=mocks
type ShellComposer interface {
	// Compose resolves the shell environment for the project and runs the
	// one-time provision step that installs the migration tool from its
	// pinned lock entry.
	Compose(ctx context.Context, project *domain.Project, lock *domain.Lockfile) (ShellEnv, error)
}
