// Package image assembles the two-stage container layout.
package image

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImageAssembler = (*Assembler)(nil)

// Assembler builds the runtime stage from a published package output. The
// builder scope (the package output with its full tree) and the runtime
// scope are disjoint directories; the single binary path is the only copy
// contract between them.
type Assembler struct {
	// baseDir receives the runtime stage and the rendered Dockerfile.
	baseDir string
}

// NewAssembler creates an Assembler writing under baseDir.
func NewAssembler(baseDir string) *Assembler {
	return &Assembler{baseDir: filepath.Clean(baseDir)}
}

// runtimeManifest is the on-disk description of the runtime layer.
type runtimeManifest struct {
	Entrypoint []string `json:"entrypoint"`
	Port       int      `json:"port"`
	Packages   []string `json:"packages"`
}

// Assemble copies the spec's binary into a fresh runtime stage and renders
// the image manifest and Dockerfile. Nothing else from the builder scope is
// referenced; a missing binary aborts the assembly.
func (a *Assembler) Assemble(ctx context.Context, spec domain.ImageSpec) (domain.RuntimeImage, error) {
	if err := ctx.Err(); err != nil {
		return domain.RuntimeImage{}, err
	}

	src := domain.AppBinaryPath(spec.PackagePath, spec.Binary)
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.RuntimeImage{}, zerr.With(domain.ErrBinaryMissing, "path", src)
		}
		return domain.RuntimeImage{}, zerr.With(zerr.Wrap(err, "failed to stat binary"), "path", src)
	}

	// The runtime scope starts empty on every assembly; only the explicit
	// copy below puts anything into it.
	runtimeDir := filepath.Join(a.baseDir, "runtime")
	if err := os.RemoveAll(runtimeDir); err != nil {
		return domain.RuntimeImage{}, zerr.Wrap(err, "failed to reset runtime stage")
	}
	workdir := filepath.Join(runtimeDir, domain.RuntimeWorkdir)
	if err := os.MkdirAll(workdir, 0o750); err != nil {
		return domain.RuntimeImage{}, zerr.Wrap(err, "failed to create runtime stage")
	}

	dst := filepath.Join(workdir, spec.Binary)
	if err := copyBinary(src, dst); err != nil {
		return domain.RuntimeImage{}, err
	}

	packages := slices.Clone(spec.RuntimePackages)
	slices.Sort(packages)

	img := domain.RuntimeImage{
		Dir:        runtimeDir,
		Entrypoint: []string{domain.RuntimeWorkdir + "/" + spec.Binary},
		Port:       spec.Port,
		Packages:   packages,
	}

	if err := a.writeManifest(runtimeDir, img); err != nil {
		return domain.RuntimeImage{}, err
	}
	if err := a.writeDockerfile(spec, packages); err != nil {
		return domain.RuntimeImage{}, err
	}
	return img, nil
}

func (a *Assembler) writeManifest(runtimeDir string, img domain.RuntimeImage) error {
	manifest := runtimeManifest{
		Entrypoint: img.Entrypoint,
		Port:       img.Port,
		Packages:   img.Packages,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal runtime manifest")
	}
	path := filepath.Join(runtimeDir, "manifest.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil { //nolint:gosec // manifest is world-readable
		return zerr.Wrap(err, "failed to write runtime manifest")
	}
	return nil
}

func (a *Assembler) writeDockerfile(spec domain.ImageSpec, packages []string) error {
	content := RenderDockerfile(spec.Binary, spec.Port, packages)
	path := filepath.Join(a.baseDir, "Dockerfile")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // rendered build file
		return zerr.Wrap(err, "failed to write Dockerfile")
	}
	return nil
}

func copyBinary(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // src is inside the package output
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open binary"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755) //nolint:gosec // executable bit required
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create runtime binary"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy binary"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to flush runtime binary"), "path", dst)
	}
	return nil
}
