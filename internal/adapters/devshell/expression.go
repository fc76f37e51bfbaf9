package devshell

import (
	"fmt"
	"sort"
	"strings"
)

// GenerateShellExpression renders the shell environment expression for the
// package set. Names are emitted in sorted order so equal sets produce
// identical expressions; the pinned versions and hashes are carried by the
// environment ID the cache is keyed on.
func GenerateShellExpression(packages map[string]string) string {
	if len(packages) == 0 {
		return "let pkgs = import <nixpkgs> {}; in pkgs.mkShell { buildInputs = []; }"
	}

	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	sort.Strings(names)

	return fmt.Sprintf(
		"let pkgs = import <nixpkgs> {}; in pkgs.mkShell { buildInputs = with pkgs; [ %s ]; }",
		strings.Join(names, " "))
}
