package ports

import "go.trai.ch/kiln/internal/core/domain"

// SourceFilter computes the minimal file set that constitutes build input.
// Excluded paths must never influence the cache key or the output bytes.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceFilter interface {
	// Snapshot walks root, applies the exclusion set, and returns the sorted
	// file set together with its cache key. Re-running on an unchanged tree
	// yields an identical set and key.
	Snapshot(root string, excludes []string) (domain.SourceSet, error)
}
