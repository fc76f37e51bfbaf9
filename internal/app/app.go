// Package app implements the application layer for kiln.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/derivation"
	"go.trai.ch/kiln/internal/registry"
	"go.trai.ch/zerr"
)

// App wires the pipeline's operations to the CLI: build the package, run the
// app, enter the development shell, list the outputs.
type App struct {
	configLoader ports.ConfigLoader
	builder      *derivation.Builder
	assembler    ports.ImageAssembler
	composer     ports.ShellComposer
	lock         ports.LockResolver
	evaluator    *registry.Evaluator
	logger       ports.Logger

	// stdout is the destination for user-facing output. Defaults to
	// os.Stdout; tests replace it.
	stdout io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	builder *derivation.Builder,
	assembler ports.ImageAssembler,
	composer ports.ShellComposer,
	lock ports.LockResolver,
	evaluator *registry.Evaluator,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		builder:      builder,
		assembler:    assembler,
		composer:     composer,
		lock:         lock,
		evaluator:    evaluator,
		logger:       logger,
		stdout:       os.Stdout,
	}
}

// SetStdout redirects user-facing output. Used by tests.
func (a *App) SetStdout(w io.Writer) {
	a.stdout = w
}

// BuildOptions configure the build operation.
type BuildOptions struct {
	// Install copies the published output into this directory when set.
	Install string

	// Image assembles the runtime image after the package build.
	Image bool
}

// Build runs the package derivation for the current workspace and prints the
// published output path.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	root, project, err := a.loadProject()
	if err != nil {
		return err
	}

	result, err := a.builder.Build(ctx, root, project)
	if err != nil {
		return zerr.Wrap(err, "package build failed")
	}

	if result.Cached {
		a.logger.Info("package output reused from store")
	}
	fmt.Fprintln(a.stdout, result.OutputPath)

	if opts.Install != "" {
		if err := installOutput(result.OutputPath, opts.Install); err != nil {
			return err
		}
	}

	if opts.Image {
		img, err := a.assembler.Assemble(ctx, domain.ImageSpec{
			PackagePath:     result.OutputPath,
			Binary:          result.Derivation.Input.AppBinary(),
			RuntimePackages: project.RuntimePackages,
			Port:            project.Port,
		})
		if err != nil {
			return zerr.Wrap(err, "image assembly failed")
		}
		fmt.Fprintln(a.stdout, img.Dir)
	}
	return nil
}

// Run builds (or reuses) the package and executes the app binary directly,
// forwarding args and inheriting the standard streams.
func (a *App) Run(ctx context.Context, args []string) error {
	root, project, err := a.loadProject()
	if err != nil {
		return err
	}

	result, err := a.builder.Build(ctx, root, project)
	if err != nil {
		return zerr.Wrap(err, "package build failed")
	}

	binary := domain.AppBinaryPath(result.OutputPath, result.Derivation.Input.AppBinary())

	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec // binary comes from the published output
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return zerr.With(zerr.Wrap(err, "app exited with error"), "binary", binary)
	}
	return nil
}

// Develop composes the development shell, runs its one-time provision, and
// drops into an interactive session with the composed environment.
func (a *App) Develop(ctx context.Context) error {
	root, project, err := a.loadProject()
	if err != nil {
		return err
	}

	lf, err := a.lock.Resolve(root, project.Manifest)
	if err != nil {
		return err
	}

	shell, err := a.composer.Compose(ctx, project, lf)
	if err != nil {
		return zerr.Wrap(err, "failed to compose development shell")
	}
	if shell.Provisioned {
		a.logger.Info("development shell provisioned: " + shell.ID)
	}

	return a.enterShell(ctx, shell)
}

// Outputs evaluates the registry and prints its entries.
func (a *App) Outputs(ctx context.Context) error {
	root, project, err := a.loadProject()
	if err != nil {
		return err
	}

	reg, err := a.evaluator.Evaluate(ctx, root, project)
	if err != nil {
		return err
	}

	for _, key := range []domain.OutputKey{domain.OutputPackages, domain.OutputDevShell, domain.OutputApp} {
		entry, err := reg.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "%s\t%s\n", entry.Key, entry.Path)
	}
	return nil
}

func (a *App) loadProject() (string, *domain.Project, error) {
	root, err := os.Getwd()
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	project, err := a.configLoader.Load(root)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to load project spec")
	}
	return root, project, nil
}

func (a *App) enterShell(ctx context.Context, shell ports.ShellEnv) error {
	sh := os.Getenv("SHELL")
	if sh == "" {
		sh = "/bin/sh"
	}

	cmd := exec.CommandContext(ctx, sh) //nolint:gosec // interactive shell requested by the user
	cmd.Env = append(os.Environ(), shell.Env...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return zerr.Wrap(err, "interactive shell exited with error")
	}
	return nil
}

// installOutput copies the published bin directory into dst. The store entry
// itself stays immutable; installation is an explicit copy out of it.
func installOutput(outputPath, dst string) error {
	srcBin := filepath.Join(outputPath, domain.BinDir)
	dstBin := filepath.Join(dst, domain.BinDir)
	if err := os.MkdirAll(dstBin, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create install directory")
	}

	entries, err := os.ReadDir(srcBin)
	if err != nil {
		return zerr.Wrap(err, "failed to read package bin directory")
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := copyFile(
			filepath.Join(srcBin, entry.Name()),
			filepath.Join(dstBin, entry.Name()),
		); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src) //nolint:gosec // src is inside the store
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read binary"), "path", src)
	}
	if err := os.WriteFile(dst, data, 0o755); err != nil { //nolint:gosec // executable bit required
		return zerr.With(zerr.Wrap(err, "failed to install binary"), "path", dst)
	}
	return nil
}
