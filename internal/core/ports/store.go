package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// DerivationStore is the content-addressed output store. Entries are
// immutable once published; an aborted build never appears under a final
// key.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DerivationStore interface {
	// Lookup returns the published path for the entry name, or "" if the
	// store has no such entry.
	Lookup(name string) (string, error)

	// Publish runs materialize against a scratch directory and atomically
	// installs the result under name. When materialize fails or ctx is
	// cancelled, nothing is published.
	Publish(ctx context.Context, name string, materialize func(dir string) error) (string, error)

	// PutInfo records the build info of a published derivation.
	PutInfo(info domain.BuildInfo) error

	// GetInfo retrieves the build info for a derivation name.
	// Returns nil, nil if not found.
	GetInfo(name string) (*domain.BuildInfo, error)
}
