// Package derivation implements the package derivation builder.
package derivation

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result is the outcome of one derivation build.
type Result struct {
	Derivation domain.Derivation

	// OutputPath is the published store entry.
	OutputPath string

	// Cached reports whether the output was reused from a prior build of an
	// equal input.
	Cached bool
}

// Builder runs the packaging pipeline for one derivation. Stages are
// strictly sequential: filter sources, verify the lock, check queries,
// compile, optionally test, publish. Nothing in the pipeline touches the
// network; the two policy flags exist to keep it that way.
type Builder struct {
	filter    ports.SourceFilter
	lock      ports.LockResolver
	hasher    ports.Hasher
	revision  ports.RevisionResolver
	queries   ports.QueryValidator
	toolchain ports.Toolchain
	store     ports.DerivationStore
	telemetry ports.Telemetry
}

// NewBuilder creates a Builder from its collaborators.
func NewBuilder(
	filter ports.SourceFilter,
	lock ports.LockResolver,
	hasher ports.Hasher,
	revision ports.RevisionResolver,
	queries ports.QueryValidator,
	toolchain ports.Toolchain,
	store ports.DerivationStore,
	telemetry ports.Telemetry,
) *Builder {
	return &Builder{
		filter:    filter,
		lock:      lock,
		hasher:    hasher,
		revision:  revision,
		queries:   queries,
		toolchain: toolchain,
		store:     store,
		telemetry: telemetry,
	}
}

// Build runs the pipeline for the workspace rooted at root. An equal input
// hash short-circuits to the already-published output. A lock mismatch
// aborts before any compilation; a failed or cancelled build publishes
// nothing.
func (b *Builder) Build(ctx context.Context, root string, project *domain.Project) (Result, error) {
	input, err := b.assembleInput(ctx, root, project)
	if err != nil {
		return Result{}, err
	}

	inputHash, err := b.hasher.ComputeInputHash(&input)
	if err != nil {
		return Result{}, zerr.Wrap(err, "failed to compute input hash")
	}
	deriv := domain.Derivation{Input: input, InputHash: inputHash}

	// Cache check: equal input reuses the published output bit for bit.
	if path, err := b.store.Lookup(deriv.OutputName()); err != nil {
		return Result{}, err
	} else if path != "" {
		_, vertex := b.telemetry.Record(ctx, "build "+input.Identity.Name.String())
		vertex.Cached()
		vertex.Complete(nil)
		return Result{Derivation: deriv, OutputPath: path, Cached: true}, nil
	}

	if err := b.checkQueries(ctx, root, project, input.Flags); err != nil {
		return Result{}, err
	}

	outputPath, err := b.compileAndPublish(ctx, root, project, deriv)
	if err != nil {
		return Result{}, err
	}
	return Result{Derivation: deriv, OutputPath: outputPath}, nil
}

// assembleInput runs the input-side stages: version resolution, source
// filtering and lock verification. The lock stage fails hard before any
// compile work when the manifest and lock disagree.
func (b *Builder) assembleInput(ctx context.Context, root string, project *domain.Project) (domain.BuildInput, error) {
	version := b.revision.Version(root)
	identity := domain.PackageIdentity{
		Name:    project.Name,
		Version: domain.NewInternedString(version),
	}

	sources, err := b.stageSources(ctx, root, project)
	if err != nil {
		return domain.BuildInput{}, err
	}

	lock, err := b.stageLock(ctx, root, project)
	if err != nil {
		return domain.BuildInput{}, err
	}

	binaries := make([]string, len(project.Binaries))
	for i, target := range project.Binaries {
		binaries[i] = target.Name.String()
	}

	return domain.BuildInput{
		Identity: identity,
		Lock:     lock,
		Sources:  sources,
		Flags:    project.Flags,
		Binaries: binaries,
	}, nil
}

func (b *Builder) stageSources(ctx context.Context, root string, project *domain.Project) (domain.SourceSet, error) {
	_, vertex := b.telemetry.Record(ctx, "filter sources")
	sources, err := b.filter.Snapshot(root, project.Excludes)
	vertex.Complete(err)
	if err != nil {
		return domain.SourceSet{}, zerr.Wrap(err, "source filtering failed")
	}
	vertex.Log(domain.LogLevelInfo, "source files: "+strconv.Itoa(len(sources.Files)))
	return sources, nil
}

func (b *Builder) stageLock(ctx context.Context, root string, project *domain.Project) (*domain.Lockfile, error) {
	_, vertex := b.telemetry.Record(ctx, "verify lock")
	lock, err := b.lock.Resolve(root, project.Manifest)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}
	return lock, nil
}

func (b *Builder) checkQueries(ctx context.Context, root string, project *domain.Project, flags domain.BuildFlags) error {
	ctx, vertex := b.telemetry.Record(ctx, "check queries")
	err := b.queries.Validate(ctx, root, project.DatabaseURL, flags.OfflineQueryCheck)
	vertex.Complete(err)
	return err
}

// compileAndPublish materializes the output inside the store's scratch
// space: one binary per target under bin/, then the test suite when the gate
// is on, then the build-info index entry. The store's atomic publish
// guarantees the final key never exposes a partial or unindexed output.
func (b *Builder) compileAndPublish(ctx context.Context, root string, project *domain.Project, deriv domain.Derivation) (string, error) {
	flags := deriv.Input.Flags

	return b.store.Publish(ctx, deriv.OutputName(), func(dir string) error {
		binDir := filepath.Join(dir, domain.BinDir)
		if err := os.MkdirAll(binDir, 0o750); err != nil {
			return zerr.Wrap(err, "failed to create bin directory")
		}

		env := compileEnv(flags)
		for _, target := range project.Binaries {
			if err := b.compileTarget(ctx, root, binDir, target, env); err != nil {
				return err
			}
		}

		if flags.RunTests {
			if err := b.runTests(ctx, root, project, env); err != nil {
				return err
			}
		}

		// Record inside the materialize step so a failed index write aborts
		// the publish instead of stranding an installed output.
		return b.recordInfo(deriv, dir)
	})
}

func (b *Builder) compileTarget(ctx context.Context, root, binDir string, target domain.BinaryTarget, env []string) error {
	name := target.Name.String()
	ctx, vertex := b.telemetry.Record(ctx, "compile "+name)

	command := target.Build
	if len(command) == 0 {
		err := zerr.With(zerr.New("binary target has no build command"), "target", name)
		vertex.Complete(err)
		return err
	}

	err := b.toolchain.Compile(ctx, ports.CompileSpec{
		Dir:     root,
		Command: command,
		Output:  filepath.Join(binDir, name),
		Env:     env,
		Log:     vertex.Stdout(),
	})
	vertex.Complete(err)
	return err
}

func (b *Builder) runTests(ctx context.Context, root string, project *domain.Project, env []string) error {
	ctx, vertex := b.telemetry.Record(ctx, "test")
	if len(project.TestCommand) == 0 {
		vertex.Log(domain.LogLevelWarn, "test gate enabled but no test command declared")
		vertex.Complete(nil)
		return nil
	}

	err := b.toolchain.Test(ctx, ports.TestSpec{
		Dir:     root,
		Command: project.TestCommand,
		Env:     env,
		Log:     vertex.Stdout(),
	})
	vertex.Complete(err)
	return err
}

// compileEnv exports the policy flags to the compile step. The embedded
// query validator inside the workspace toolchain keys off
// QUERY_CHECK_OFFLINE the way the pipeline's own validator keys off the
// flag.
func compileEnv(flags domain.BuildFlags) []string {
	return []string{
		"QUERY_CHECK_OFFLINE=" + strconv.FormatBool(flags.OfflineQueryCheck),
		// Pin timestamps for reproducible binaries.
		"SOURCE_DATE_EPOCH=0",
	}
}

func (b *Builder) recordInfo(deriv domain.Derivation, dir string) error {
	outputHash, err := b.hasher.ComputeTreeHash(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to hash output tree")
	}
	return b.store.PutInfo(domain.BuildInfo{
		Derivation: deriv.OutputName(),
		InputHash:  deriv.InputHash,
		OutputHash: outputHash,
		Timestamp:  time.Now(),
	})
}
