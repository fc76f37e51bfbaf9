// Package lock loads and verifies the pinned dependency lock.
package lock

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the checked-in lock file name.
const Filename = "kiln.lock"

var _ ports.LockResolver = (*Resolver)(nil)

// Resolver reads the checked-in lock and verifies it against the manifest.
// It never resolves or upgrades anything itself: the lock is the single
// source of dependency resolution across packaging, image assembly and the
// development shell.
type Resolver struct {
	Filename string
}

// NewResolver creates a Resolver for the default lock file name.
func NewResolver() *Resolver {
	return &Resolver{Filename: Filename}
}

// lockDTO mirrors the on-disk lock schema.
type lockDTO struct {
	Version  int                 `yaml:"version"`
	Packages map[string]entryDTO `yaml:"packages"`
	Tools    map[string]entryDTO `yaml:"tools"`
}

type entryDTO struct {
	Version string `yaml:"version"`
	Hash    string `yaml:"hash"`
}

// Resolve loads the lock from the workspace root and verifies that every
// manifest entry is pinned with an exact version and content hash. A missing
// lock file or any mismatch is a hard failure before compilation begins.
func (r *Resolver) Resolve(root string, manifest domain.Manifest) (*domain.Lockfile, error) {
	path := filepath.Join(root, r.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is rooted in the workspace
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrLockMissing, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", path)
	}

	var dto lockDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse lock file"), "path", path)
	}

	lf := &domain.Lockfile{
		Version:  dto.Version,
		Packages: internEntries(dto.Packages),
		Tools:    internEntries(dto.Tools),
	}

	if err := lf.Verify(manifest); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return lf, nil
}

func internEntries(entries map[string]entryDTO) map[string]domain.LockedPackage {
	res := make(map[string]domain.LockedPackage, len(entries))
	for name, e := range entries {
		res[name] = domain.LockedPackage{
			Name:    domain.NewInternedString(name),
			Version: domain.NewInternedString(e.Version),
			Hash:    domain.NewInternedString(e.Hash),
		}
	}
	return res
}
