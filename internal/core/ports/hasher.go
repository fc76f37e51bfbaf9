package ports

import "go.trai.ch/kiln/internal/core/domain"

// Hasher computes the content-addressed input hash of a derivation.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash hashes the identity, flags, lock and source set of the
	// input. Equal inputs produce equal hashes on every machine.
	ComputeInputHash(input *domain.BuildInput) (string, error)

	// ComputeTreeHash hashes a directory tree (relative paths and content).
	// Used to fingerprint published outputs for the determinism check.
	ComputeTreeHash(dir string) (string, error)
}
