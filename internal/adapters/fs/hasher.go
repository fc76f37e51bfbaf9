package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes the content-addressed hashes of the pipeline: the source
// cache key and the derivation input hash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeSourceKey hashes the sorted relative file list and the content of
// each file. The key depends on nothing outside the file set, so excluded
// paths can never influence it.
func (h *Hasher) ComputeSourceKey(root string, files []string) (string, error) {
	hasher := xxhash.New()

	for _, rel := range files {
		_, _ = hasher.WriteString(rel)
		_, _ = hasher.Write([]byte{0})

		fileHash, err := h.ComputeFileHash(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return "", err
		}
		if err := binary.Write(hasher, binary.LittleEndian, fileHash); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeTreeHash hashes a directory tree: sorted relative paths plus the
// content of every file. Byte-identical trees hash equally.
func (h *Hasher) ComputeTreeHash(dir string) (string, error) {
	walker := NewWalker()

	paths, err := walker.WalkFiles(dir, nil)
	if err != nil {
		return "", err
	}

	files := make([]string, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return "", err
		}
		files = append(files, filepath.ToSlash(rel))
	}
	sort.Strings(files)

	return h.ComputeSourceKey(dir, files)
}

// ComputeInputHash computes a single hash over the derivation input:
// identity, policy flags, binary targets, lock and source set. Equal inputs
// hash equally regardless of machine, build order or wall-clock time.
func (h *Hasher) ComputeInputHash(input *domain.BuildInput) (string, error) {
	hasher := xxhash.New()

	h.hashIdentity(input, hasher)
	h.hashLock(input.Lock, hasher)

	// The source set key already covers paths and content.
	_, _ = hasher.WriteString(input.Sources.Key)
	_, _ = hasher.Write([]byte{0})

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashIdentity(input *domain.BuildInput, hasher *xxhash.Digest) {
	_, _ = hasher.WriteString(input.Identity.Name.String())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(input.Identity.Version.String())
	_, _ = hasher.Write([]byte{0})

	// The two policy flags are part of the input, not ambient state.
	_, _ = hasher.WriteString(strconv.FormatBool(input.Flags.OfflineQueryCheck))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(strconv.FormatBool(input.Flags.RunTests))
	_, _ = hasher.Write([]byte{0})

	for _, bin := range input.Binaries {
		_, _ = hasher.WriteString(bin)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator
}

func (h *Hasher) hashLock(lock *domain.Lockfile, hasher *xxhash.Digest) {
	if lock == nil {
		_, _ = hasher.Write([]byte{0})
		return
	}

	_, _ = hasher.WriteString(strconv.Itoa(lock.Version))
	_, _ = hasher.Write([]byte{0})

	hashLockSection(lock.Packages, hasher)
	hashLockSection(lock.Tools, hasher)
}

func hashLockSection(entries map[string]domain.LockedPackage, hasher *xxhash.Digest) {
	// Sort names for determinism.
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := entries[name]
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(entry.Version.String())
		_, _ = hasher.Write([]byte{'#'})
		_, _ = hasher.WriteString(entry.Hash.String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}
