// Package fs provides the source filter and input hashing adapters.
package fs

import (
	"io/fs"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Walker yields the files under a root directory, applying exclusion
// patterns to both directories and files.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles returns all file paths under root, skipping version-control
// metadata and any entry matching an exclusion pattern. Patterns match
// against the entry name and against the root-relative path. Any walk
// failure aborts the whole listing; a partial set must never reach the
// hasher.
func (w *Walker) WalkFiles(root string, excludes []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		if excluded(d, rel, excludes) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "source walk failed"), "root", root)
	}
	return files, nil
}

// excluded reports whether the entry is outside the build input set.
func excluded(d fs.DirEntry, rel string, excludes []string) bool {
	name := d.Name()

	// Version-control metadata never counts as build input.
	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true
	}

	for _, pattern := range excludes {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.ToSlash(rel)); ok {
			return true
		}
	}
	return false
}
