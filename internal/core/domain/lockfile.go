package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Manifest enumerates the dependencies a workspace requests, before
// resolution. Tools are the auxiliary commands the development shell installs
// (e.g., the migration CLI); they are declared and pinned exactly like
// ordinary dependencies.
type Manifest struct {
	Dependencies map[string]string
	Tools        map[string]string
}

// LockedPackage is one fully pinned dependency: an exact resolved version and
// a content hash. A lock entry without both is unusable.
type LockedPackage struct {
	Name    InternedString
	Version InternedString
	Hash    InternedString
}

// Lockfile is the complete pinned state of the dependency graph. It is the
// single source of resolution for packaging, image assembly and the
// development shell.
type Lockfile struct {
	// Version is the lockfile format version.
	Version int

	// Packages maps canonical package names to their pinned entries.
	Packages map[string]LockedPackage

	// Tools maps declared tool names to their pinned entries.
	Tools map[string]LockedPackage
}

// Entry returns the pinned entry for name, searching packages then tools.
func (l *Lockfile) Entry(name string) (LockedPackage, bool) {
	if p, ok := l.Packages[name]; ok {
		return p, true
	}
	p, ok := l.Tools[name]
	return p, ok
}

// Verify checks that every dependency and tool the manifest requires is
// present in the lock with an exact version and a content hash. A miss is a
// hard failure; the lock is never silently re-resolved.
func (l *Lockfile) Verify(m Manifest) error {
	if err := verifySection(m.Dependencies, l.Packages, "dependency"); err != nil {
		return err
	}
	return verifySection(m.Tools, l.Tools, "tool")
}

func verifySection(requested map[string]string, locked map[string]LockedPackage, kind string) error {
	for name := range requested {
		entry, ok := locked[name]
		if !ok {
			err := zerr.With(ErrLockMismatch, "name", name)
			return zerr.With(err, "reason", kind+" not locked")
		}
		if entry.Version.String() == "" {
			err := zerr.With(ErrLockMismatch, "name", name)
			return zerr.With(err, "reason", "no resolved version")
		}
		if !exactVersion(entry.Version.String()) {
			err := zerr.With(ErrLockMismatch, "name", name)
			return zerr.With(err, "reason", "version is not exact")
		}
		if entry.Hash.String() == "" {
			err := zerr.With(ErrLockMismatch, "name", name)
			return zerr.With(err, "reason", "no content hash")
		}
	}
	return nil
}

// exactVersion reports whether v names a single pinned version. Range
// operators, wildcards and set separators mark an unresolved entry.
func exactVersion(v string) bool {
	return !strings.ContainsAny(v, "^~<>=*|, ")
}
