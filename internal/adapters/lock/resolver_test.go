package lock_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/kiln/internal/adapters/lock"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

const lockContent = `version: 1
packages:
  openssl:
    version: "3.0.13"
    hash: "sha256-aaa"
  zlib:
    version: "1.3.1"
    hash: "sha256-bbb"
tools:
  sqlx-cli:
    version: "0.7.4"
    hash: "sha256-ccc"
`

func writeLock(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, lock.Filename), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestResolver_Resolve(t *testing.T) {
	root := t.TempDir()
	writeLock(t, root, lockContent)

	resolver := lock.NewResolver()
	lf, err := resolver.Resolve(root, domain.Manifest{
		Dependencies: map[string]string{"openssl": "3", "zlib": "1"},
		Tools:        map[string]string{"sqlx-cli": "0.7"},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if lf.Version != 1 {
		t.Errorf("expected lock version 1, got %d", lf.Version)
	}
	entry, ok := lf.Packages["openssl"]
	if !ok {
		t.Fatal("expected openssl entry")
	}
	if entry.Version.String() != "3.0.13" {
		t.Errorf("expected version 3.0.13, got %q", entry.Version.String())
	}
	if entry.Hash.String() != "sha256-aaa" {
		t.Errorf("expected hash sha256-aaa, got %q", entry.Hash.String())
	}
	if _, ok := lf.Tools["sqlx-cli"]; !ok {
		t.Error("expected sqlx-cli tool entry")
	}
}

func TestResolver_Resolve_MissingFile(t *testing.T) {
	resolver := lock.NewResolver()
	_, err := resolver.Resolve(t.TempDir(), domain.Manifest{})
	if !errors.Is(err, domain.ErrLockMissing) {
		t.Fatalf("expected ErrLockMissing, got %v", err)
	}
}

func TestResolver_Resolve_ManifestMismatch(t *testing.T) {
	root := t.TempDir()
	writeLock(t, root, lockContent)

	resolver := lock.NewResolver()
	_, err := resolver.Resolve(root, domain.Manifest{
		Dependencies: map[string]string{"libpq": "16"},
	})
	if !errors.Is(err, domain.ErrLockMismatch) {
		t.Fatalf("expected ErrLockMismatch, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected zerr.Error, got %T", err)
	}
	if got, ok := zErr.Metadata()["path"].(string); !ok || got == "" {
		t.Errorf("expected lock path metadata, got %v", got)
	}
}

func TestResolver_Resolve_UnpinnedEntry(t *testing.T) {
	root := t.TempDir()
	writeLock(t, root, `version: 1
packages:
  openssl:
    version: "3.0.13"
`)

	resolver := lock.NewResolver()
	_, err := resolver.Resolve(root, domain.Manifest{
		Dependencies: map[string]string{"openssl": "3"},
	})
	if !errors.Is(err, domain.ErrLockMismatch) {
		t.Fatalf("expected ErrLockMismatch for hashless entry, got %v", err)
	}
}
