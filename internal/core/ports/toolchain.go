package ports

import (
	"context"
	"io"
)

// CompileSpec describes one compile invocation.
type CompileSpec struct {
	// Dir is the source root the command runs in.
	Dir string

	// Command is the compile argv.
	Command []string

	// Output is the absolute destination path of the binary, exported to the
	// command as KILN_OUTPUT.
	Output string

	// Env are extra "KEY=VALUE" pairs layered over the base environment.
	Env []string

	// Log receives the interleaved command output.
	Log io.Writer
}

// TestSpec describes one test-suite invocation.
type TestSpec struct {
	Dir     string
	Command []string
	Env     []string
	Log     io.Writer
}

// Toolchain executes compile and test commands. It must not assume network
// availability; the surrounding sandbox enforces the actual isolation.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Compile runs the compile step. A non-zero exit propagates verbatim as
	// domain.ErrCompileFailed with the exit code attached.
	Compile(ctx context.Context, spec CompileSpec) error

	// Test runs the workspace test suite.
	Test(ctx context.Context, spec TestSpec) error
}
