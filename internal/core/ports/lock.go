// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/kiln/internal/core/domain"

// LockResolver loads the checked-in dependency lock and verifies it against
// the manifest. It is a pure transform: the lock is consulted, never re-run,
// at package-build time, and a mismatch is a hard failure.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks
type LockResolver interface {
	// Resolve reads the lock for the workspace rooted at root and verifies
	// that every manifest entry is fully pinned.
	Resolve(root string, manifest domain.Manifest) (*domain.Lockfile, error)
}
