// Package domain contains the core data model for the packaging pipeline.
package domain

// VersionUnknown is the version string used when the workspace revision
// cannot be resolved at all (no repository, no HEAD).
const VersionUnknown = "unknown"

// DirtySuffix marks a version derived from a revision with uncommitted
// modifications in the tree.
const DirtySuffix = "-dirty"

// PackageIdentity names the artifact a build produces.
type PackageIdentity struct {
	// Name is the package name (e.g., "svc").
	Name InternedString

	// Version is derived from version-control state: a clean revision yields
	// its short identifier, a modified tree yields "<short>-dirty", and an
	// unresolvable state yields VersionUnknown.
	Version InternedString
}

// NewPackageIdentity creates an identity from raw name and version strings.
func NewPackageIdentity(name, version string) PackageIdentity {
	return PackageIdentity{
		Name:    NewInternedString(name),
		Version: NewInternedString(version),
	}
}

// DefaultServerBinary returns the conventional server binary target for the
// package: "<name>-server". Used when the project spec declares no targets.
func (id PackageIdentity) DefaultServerBinary() string {
	return id.Name.String() + "-server"
}
