package domain

import "go.trai.ch/zerr"

var (
	// ErrLockMismatch is returned when the manifest requires a dependency that
	// is absent from or inconsistent with the checked-in lock.
	ErrLockMismatch = zerr.New("lock mismatch")

	// ErrLockMissing is returned when no lock file exists for the workspace.
	ErrLockMissing = zerr.New("lock file missing")

	// ErrQueryMetadataMissing is returned by the offline query validator when
	// the recorded query metadata is absent or corrupt.
	ErrQueryMetadataMissing = zerr.New("query metadata missing")

	// ErrDatabaseUnreachable is returned by the online query validator when no
	// database accepts connections at the configured address.
	ErrDatabaseUnreachable = zerr.New("database unreachable")

	// ErrBinaryMissing is returned when an expected binary path does not exist
	// in the builder stage during image assembly.
	ErrBinaryMissing = zerr.New("binary missing from builder stage")

	// ErrCompileFailed is returned when the toolchain exits non-zero during
	// compilation.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrTestsFailed is returned when the workspace test suite exits non-zero.
	ErrTestsFailed = zerr.New("test suite failed")

	// ErrUnknownOutput is returned when the registry is asked for an output
	// key it does not expose.
	ErrUnknownOutput = zerr.New("unknown output")
)
