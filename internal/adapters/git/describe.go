// Package git resolves the package version from repository state.
package git

import (
	"os/exec"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

var _ ports.RevisionResolver = (*Resolver)(nil)

// Resolver derives the package version from the git state of the workspace.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Version resolves the workspace version: the short revision for a clean
// tree, "<short>-dirty" for a modified tree, and domain.VersionUnknown when
// no revision can be resolved. Resolution failures never abort a build; they
// collapse to the unknown version.
func (r *Resolver) Version(root string) string {
	rev, err := r.shortRev(root)
	if err != nil || rev == "" {
		return domain.VersionUnknown
	}

	dirty, err := r.isDirty(root)
	if err != nil {
		return domain.VersionUnknown
	}
	if dirty {
		return rev + domain.DirtySuffix
	}
	return rev
}

func (r *Resolver) shortRev(root string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (r *Resolver) isDirty(root string) (bool, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return false, err
	}
	return len(strings.TrimSpace(string(out))) > 0, nil
}
