package domain

// BuildFlags are the two policy toggles of the pipeline. They are explicit
// fields of the build input, never ambient process state, so that equal
// inputs stay equal across machines.
type BuildFlags struct {
	// OfflineQueryCheck switches the embedded query validator from "connect
	// to a live database" to "validate against pre-recorded metadata".
	OfflineQueryCheck bool

	// RunTests controls whether the workspace test suite executes during
	// packaging. It gates the whole suite, not individual tests: at least one
	// test needs a live database pool the build sandbox cannot provide.
	RunTests bool
}

// DefaultBuildFlags returns the packaging defaults: offline validation on,
// tests off.
func DefaultBuildFlags() BuildFlags {
	return BuildFlags{
		OfflineQueryCheck: true,
		RunTests:          false,
	}
}

// SourceSet is the filtered file set that constitutes build input.
type SourceSet struct {
	// Root is the workspace root the files are relative to.
	Root string

	// Files are the relative paths included in the build, sorted.
	Files []string

	// Key is the cache key over the file set (paths and content).
	Key string
}

// BuildInput is the complete input of a package derivation. Equal BuildInput
// must yield bit-identical output regardless of machine, build order or
// wall-clock time.
type BuildInput struct {
	Identity PackageIdentity
	Lock     *Lockfile
	Sources  SourceSet
	Flags    BuildFlags

	// Binaries are the named binary targets to compile, in declaration order.
	// The first entry is the runnable app.
	Binaries []string
}

// AppBinary returns the binary the registry's "app" output resolves to.
func (in *BuildInput) AppBinary() string {
	if len(in.Binaries) == 0 {
		return in.Identity.DefaultServerBinary()
	}
	return in.Binaries[0]
}
