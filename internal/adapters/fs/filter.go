package fs

import (
	"path/filepath"
	"sort"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

var _ ports.SourceFilter = (*Filter)(nil)

// Filter computes the minimal file set that constitutes build input.
// Everything the exclusion set names (prior build outputs, environment
// metadata, machine-local configuration) stays outside the cache key.
type Filter struct {
	walker *Walker
	hasher *Hasher
}

// NewFilter creates a new Filter.
func NewFilter(walker *Walker, hasher *Hasher) *Filter {
	return &Filter{walker: walker, hasher: hasher}
}

// Snapshot walks root, applies the exclusion set and returns the sorted
// relative file list with its content cache key. The same unchanged tree
// yields an identical set and key on every invocation.
func (f *Filter) Snapshot(root string, excludes []string) (domain.SourceSet, error) {
	paths, err := f.walker.WalkFiles(root, excludes)
	if err != nil {
		return domain.SourceSet{}, err
	}

	files := make([]string, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return domain.SourceSet{}, err
		}
		files = append(files, filepath.ToSlash(rel))
	}
	sort.Strings(files)

	key, err := f.hasher.ComputeSourceKey(root, files)
	if err != nil {
		return domain.SourceSet{}, err
	}

	return domain.SourceSet{
		Root:  root,
		Files: files,
		Key:   key,
	}, nil
}
