// Package cas implements the content-addressed derivation store.
package cas

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDir is the store location relative to the workspace root.
const DefaultDir = ".kiln/store"

const indexFile = "index.json"

var _ ports.DerivationStore = (*Store)(nil)

// Store keeps published derivation outputs under content-addressed names,
// with a flat JSON index of build info. Outputs are immutable: publishing
// materializes into a scratch directory and renames into place, so an
// aborted build never appears under a final key.
type Store struct {
	dir string

	mu    sync.RWMutex
	index map[string]domain.BuildInfo
}

// NewStore creates a store rooted at dir, loading the existing index.
func NewStore(dir string) (*Store, error) {
	s := &Store{
		dir:   filepath.Clean(dir),
		index: make(map[string]domain.BuildInfo),
	}
	if err := s.loadIndex(); err != nil {
		return nil, err
	}
	return s, nil
}

// Lookup returns the published path for name, or "" when absent.
func (s *Store) Lookup(name string) (string, error) {
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to stat store entry"), "path", path)
	}
	return path, nil
}

// Publish materializes an output under a scratch directory and atomically
// installs it as name. The final key only ever points at a complete output.
func (s *Store) Publish(ctx context.Context, name string, materialize func(dir string) error) (string, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", zerr.Wrap(err, "failed to create store directory")
	}

	scratch, err := os.MkdirTemp(s.dir, ".build-"+name+"-")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create scratch directory")
	}

	if err := materialize(scratch); err != nil {
		_ = os.RemoveAll(scratch)
		return "", err
	}
	if err := ctx.Err(); err != nil {
		_ = os.RemoveAll(scratch)
		return "", err
	}

	final := filepath.Join(s.dir, name)
	if err := os.Rename(scratch, final); err != nil {
		// A concurrent build of the equal input may have won the rename.
		if _, statErr := os.Stat(final); statErr == nil {
			_ = os.RemoveAll(scratch)
			return final, nil
		}
		_ = os.RemoveAll(scratch)
		return "", zerr.With(zerr.Wrap(err, "failed to publish store entry"), "name", name)
	}
	return final, nil
}

// GetInfo retrieves the build info for a derivation name.
func (s *Store) GetInfo(name string) (*domain.BuildInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.index[name]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// PutInfo records the build info of a published derivation.
func (s *Store) PutInfo(info domain.BuildInfo) error {
	s.mu.Lock()
	s.index[info.Derivation] = info
	s.mu.Unlock()

	return s.saveIndex()
}

func (s *Store) loadIndex() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Join(s.dir, indexFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read store index")
	}

	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.index); err != nil {
		return zerr.Wrap(err, "failed to unmarshal store index")
	}
	return nil
}

func (s *Store) saveIndex() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.index, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal store index")
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create store directory")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(filepath.Join(s.dir, indexFile), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write store index")
	}
	return nil
}
