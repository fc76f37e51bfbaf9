package domain

import "path/filepath"

// Derivation is the pure mapping from a BuildInput to an output location.
// The output name is content-addressed: it embeds the input hash, so equal
// inputs share one store entry and unequal inputs never collide.
type Derivation struct {
	Input     BuildInput
	InputHash string
}

// OutputName returns the store entry name for the derivation:
// "<inputhash>-<name>-<version>".
func (d *Derivation) OutputName() string {
	return d.InputHash + "-" + d.Input.Identity.Name.String() + "-" + d.Input.Identity.Version.String()
}

// BinDir is the directory inside a package output that holds the compiled
// binaries.
const BinDir = "bin"

// AppBinaryPath resolves the invocation path of a binary inside a package
// output: "<outputPath>/bin/<binary>".
func AppBinaryPath(outputPath, binary string) string {
	return filepath.Join(outputPath, BinDir, binary)
}

// OutputKey names an addressable output of the registry.
type OutputKey string

const (
	// OutputPackages is the packaged binaries output.
	OutputPackages OutputKey = "packages"
	// OutputDevShell is the interactive development environment output.
	OutputDevShell OutputKey = "devshell"
	// OutputApp is the runnable app pointer into the package output.
	OutputApp OutputKey = "app"
)

// OutputEntry is one resolved registry entry. Entries are created once at
// evaluation time and never mutated afterwards.
type OutputEntry struct {
	Key OutputKey

	// Path is the resolved filesystem path of the output.
	Path string

	// Invocation is the command external tooling runs for this output, empty
	// for outputs that are not runnable.
	Invocation []string
}
