// Package registry exposes the named, addressable outputs of a workspace.
package registry

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/derivation"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Registry holds the three resolved outputs: the package, the development
// shell, and the runnable app pointer. Entries are resolved once at
// evaluation time and never mutated afterwards.
type Registry struct {
	entries map[domain.OutputKey]domain.OutputEntry

	// buildResult is kept so callers can tell a cached evaluation apart.
	buildResult derivation.Result

	shell ports.ShellEnv
}

// Get returns the entry for key.
func (r *Registry) Get(key domain.OutputKey) (domain.OutputEntry, error) {
	entry, ok := r.entries[key]
	if !ok {
		return domain.OutputEntry{}, zerr.With(domain.ErrUnknownOutput, "key", string(key))
	}
	return entry, nil
}

// BuildResult returns the package derivation result behind the registry.
func (r *Registry) BuildResult() derivation.Result {
	return r.buildResult
}

// Shell returns the composed shell environment behind the devshell entry.
func (r *Registry) Shell() ports.ShellEnv {
	return r.shell
}

// Evaluator resolves the registry for a workspace. The package chain and the
// shell chain share no mutable state, so they evaluate concurrently; each is
// content-addressed on its own inputs.
type Evaluator struct {
	builder  *derivation.Builder
	lock     ports.LockResolver
	composer ports.ShellComposer
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(builder *derivation.Builder, lock ports.LockResolver, composer ports.ShellComposer) *Evaluator {
	return &Evaluator{
		builder:  builder,
		lock:     lock,
		composer: composer,
	}
}

// Evaluate resolves all three outputs for the workspace rooted at root.
func (e *Evaluator) Evaluate(ctx context.Context, root string, project *domain.Project) (*Registry, error) {
	var (
		result derivation.Result
		shell  ports.ShellEnv
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		result, err = e.builder.Build(gctx, root, project)
		return err
	})

	g.Go(func() error {
		// The shell consumes the same lock independently of the package
		// chain; it is not part of the reproducible artifact chain.
		lf, err := e.lock.Resolve(root, project.Manifest)
		if err != nil {
			return err
		}
		shell, err = e.composer.Compose(gctx, project, lf)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	appBinary := result.Derivation.Input.AppBinary()
	appPath := domain.AppBinaryPath(result.OutputPath, appBinary)

	entries := map[domain.OutputKey]domain.OutputEntry{
		domain.OutputPackages: {
			Key:  domain.OutputPackages,
			Path: result.OutputPath,
		},
		domain.OutputDevShell: {
			Key:  domain.OutputDevShell,
			Path: shell.Dir,
		},
		domain.OutputApp: {
			Key:        domain.OutputApp,
			Path:       appPath,
			Invocation: []string{appPath},
		},
	}

	return &Registry{
		entries:     entries,
		buildResult: result,
		shell:       shell,
	}, nil
}
