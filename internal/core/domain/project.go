package domain

// DefaultPort is the network port the packaged server process listens on.
const DefaultPort = 3000

// BinaryTarget is one named binary the workspace builds. Build is the argv
// of the compile step; the toolchain runs it in the source root with
// KILN_OUTPUT pointing at the destination path.
type BinaryTarget struct {
	Name  InternedString
	Build []string
}

// Project is the workspace description loaded from kiln.yaml. It carries
// everything the pipeline needs besides version-control state: the identity
// name, the binary targets, the source exclusion set, and the declared
// runtime and development dependencies.
type Project struct {
	Name InternedString

	// Binaries are the build entry points, first one is the runnable app.
	Binaries []BinaryTarget

	// TestCommand runs the workspace test suite when the test gate is on.
	TestCommand []string

	// DatabaseURL is the address the query validator dials in online mode.
	// Ignored entirely when the offline check is enabled.
	DatabaseURL string

	// Excludes is the source-filter exclusion set: prior build outputs,
	// environment metadata, machine-local configuration.
	Excludes []string

	// RuntimePackages are the OS-level packages the runtime image layer
	// declares. Nothing else crosses the stage boundary.
	RuntimePackages []string

	// DevTools are the extra packages of the interactive shell (TLS library
	// and headers, compiler-discovery helper). They never reach the package
	// derivation.
	DevTools []string

	// MigrationTool names the lock tools entry the shell provisions.
	MigrationTool string

	// Port is the network port the server binary listens on.
	Port int

	// Flags are the packaging policy defaults for this workspace.
	Flags BuildFlags

	Manifest Manifest
}
