package git_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/kiln/internal/adapters/git"
	"go.trai.ch/kiln/internal/core/domain"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init")
	if err := os.WriteFile(filepath.Join(dir, "main.rs"), []byte("fn main() {}"), 0o600); err != nil {
		t.Fatal(err)
	}
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "initial")
	return dir
}

func TestResolver_Version_CleanTree(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)

	version := git.NewResolver().Version(dir)
	if version == domain.VersionUnknown {
		t.Fatal("expected resolved revision for committed tree")
	}
	if strings.HasSuffix(version, domain.DirtySuffix) {
		t.Errorf("expected clean version, got %q", version)
	}
}

func TestResolver_Version_DirtyTree(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)

	if err := os.WriteFile(filepath.Join(dir, "main.rs"), []byte("fn main() { panic!() }"), 0o600); err != nil {
		t.Fatal(err)
	}

	version := git.NewResolver().Version(dir)
	if !strings.HasSuffix(version, domain.DirtySuffix) {
		t.Errorf("expected dirty marker, got %q", version)
	}
}

func TestResolver_Version_NoRepository(t *testing.T) {
	requireGit(t)

	version := git.NewResolver().Version(t.TempDir())
	if version != domain.VersionUnknown {
		t.Errorf("expected %q outside a repository, got %q", domain.VersionUnknown, version)
	}
}
