package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"go.trai.ch/kiln/internal/adapters/config"
	"go.trai.ch/kiln/internal/core/domain"
)

func writeSpec(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, config.Filename), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoader_Load_Full(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, `version: "1"
name: svc
binaries:
  - name: svc-server
    build: ["cargo", "build", "--release", "--bin", "svc-server"]
  - name: svc-worker
    build: ["cargo", "build", "--release", "--bin", "svc-worker"]
test: ["cargo", "test", "--workspace"]
database_url: "postgres://localhost:5432/svc"
exclude:
  - "docs"
runtime_packages:
  - ca-certificates
dev_tools:
  - openssl
  - pkg-config
migration_tool: sqlx-cli
port: 3000
flags:
  offline_query_check: true
  run_tests: false
dependencies:
  openssl: "3"
tools:
  sqlx-cli: "0.7"
`)

	loader := config.NewLoader()
	project, err := loader.Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if project.Name.String() != "svc" {
		t.Errorf("expected name svc, got %q", project.Name.String())
	}
	if len(project.Binaries) != 2 {
		t.Fatalf("expected 2 binaries, got %d", len(project.Binaries))
	}
	if project.Binaries[0].Name.String() != "svc-server" {
		t.Errorf("expected first binary svc-server, got %q", project.Binaries[0].Name.String())
	}
	if project.Port != 3000 {
		t.Errorf("expected port 3000, got %d", project.Port)
	}
	if project.MigrationTool != "sqlx-cli" {
		t.Errorf("expected migration tool sqlx-cli, got %q", project.MigrationTool)
	}
	if project.Manifest.Dependencies["openssl"] != "3" {
		t.Errorf("expected openssl dependency, got %v", project.Manifest.Dependencies)
	}
	if project.Manifest.Tools["sqlx-cli"] != "0.7" {
		t.Errorf("expected sqlx-cli tool, got %v", project.Manifest.Tools)
	}

	// Declared exclusions extend the base set, never replace it.
	for _, want := range []string{"kiln-out", ".kiln", "docs"} {
		if !slices.Contains(project.Excludes, want) {
			t.Errorf("expected exclusion %q in %v", want, project.Excludes)
		}
	}
}

func TestLoader_Load_Defaults(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, "name: svc\n")

	loader := config.NewLoader()
	project, err := loader.Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(project.Binaries) != 1 || project.Binaries[0].Name.String() != "svc-server" {
		t.Errorf("expected default binary svc-server, got %v", project.Binaries)
	}
	if project.Port != domain.DefaultPort {
		t.Errorf("expected default port %d, got %d", domain.DefaultPort, project.Port)
	}
	if !project.Flags.OfflineQueryCheck {
		t.Error("expected offline query check to default on")
	}
	if project.Flags.RunTests {
		t.Error("expected test gate to default off")
	}
}

func TestLoader_Load_FlagOverride(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, `name: svc
flags:
  offline_query_check: false
`)

	loader := config.NewLoader()
	project, err := loader.Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if project.Flags.OfflineQueryCheck {
		t.Error("expected explicit false to override the default")
	}
	if project.Flags.RunTests {
		t.Error("expected unset flag to keep its default")
	}
}

func TestLoader_Load_MissingName(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, "port: 3000\n")

	loader := config.NewLoader()
	if _, err := loader.Load(root); err == nil {
		t.Fatal("expected error for missing project name")
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := config.NewLoader()
	if _, err := loader.Load(t.TempDir()); err == nil {
		t.Fatal("expected error for missing spec file")
	}
}
