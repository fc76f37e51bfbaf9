package ports

import "context"

// QueryValidator is the compile-time check for embedded query statements.
//
//go:generate go run go.uber.org/mock/mockgen -source=querycheck.go -destination=mocks/mock_querycheck.go -package=mocks
type QueryValidator interface {
	// Validate checks the workspace's recorded queries. With offline set, it
	// verifies the pre-recorded metadata under root; otherwise it connects to
	// databaseURL and fails with a connection-refused-class error when no
	// database is reachable.
	Validate(ctx context.Context, root, databaseURL string, offline bool) error
}
