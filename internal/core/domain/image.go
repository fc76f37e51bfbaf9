package domain

// RuntimeWorkdir is the fixed working directory of the runtime image layer.
const RuntimeWorkdir = "/app"

// ImageSpec describes one multi-stage image build: the package output to
// take the binary from, and the runtime layer declaration.
type ImageSpec struct {
	// PackagePath is the published package output directory.
	PackagePath string

	// Binary is the single binary name copied across the stage boundary.
	Binary string

	// RuntimePackages are the declared OS-level runtime packages.
	RuntimePackages []string

	// Port is the network port the image exposes.
	Port int
}

// RuntimeImage is the assembled runtime layer. The builder stage directory
// is discarded before this value is returned; only the copied binary and the
// declared packages exist under Dir.
type RuntimeImage struct {
	// Dir is the runtime stage root on disk.
	Dir string

	// Entrypoint invokes the copied binary with no arguments.
	Entrypoint []string

	// Port is the exposed network port.
	Port int

	// Packages are the declared runtime OS packages, sorted.
	Packages []string
}
