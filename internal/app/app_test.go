package app_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/derivation"
	"go.trai.ch/kiln/internal/registry"
	"go.uber.org/mock/gomock"
)

type appFixture struct {
	app    *app.App
	stdout *bytes.Buffer

	loader    *mocks.MockConfigLoader
	lock      *mocks.MockLockResolver
	store     *mocks.MockDerivationStore
	assembler *mocks.MockImageAssembler
	composer  *mocks.MockShellComposer
	logger    *mocks.MockLogger
}

// setupApp wires an App whose package chain resolves to a cached store
// entry.
func setupApp(t *testing.T, storePath string) appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	vertex.EXPECT().Stderr().Return(io.Discard).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		},
	).AnyTimes()

	filter := mocks.NewMockSourceFilter(ctrl)
	filter.EXPECT().Snapshot(gomock.Any(), gomock.Any()).
		Return(domain.SourceSet{Key: "cafe"}, nil).AnyTimes()

	f := appFixture{
		stdout:    &bytes.Buffer{},
		loader:    mocks.NewMockConfigLoader(ctrl),
		lock:      mocks.NewMockLockResolver(ctrl),
		store:     mocks.NewMockDerivationStore(ctrl),
		assembler: mocks.NewMockImageAssembler(ctrl),
		composer:  mocks.NewMockShellComposer(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.lock.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(&domain.Lockfile{Version: 1}, nil).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	hasher := mocks.NewMockHasher(ctrl)
	hasher.EXPECT().ComputeInputHash(gomock.Any()).Return("0011", nil).AnyTimes()

	revision := mocks.NewMockRevisionResolver(ctrl)
	revision.EXPECT().Version(gomock.Any()).Return("abc123").AnyTimes()

	f.store.EXPECT().Lookup("0011-svc-abc123").Return(storePath, nil).AnyTimes()

	queries := mocks.NewMockQueryValidator(ctrl)
	toolchain := mocks.NewMockToolchain(ctrl)
	builder := derivation.NewBuilder(
		filter, f.lock, hasher, revision, queries, toolchain, f.store, telemetry,
	)
	evaluator := registry.NewEvaluator(builder, f.lock, f.composer)

	f.app = app.New(f.loader, builder, f.assembler, f.composer, f.lock, evaluator, f.logger)
	f.app.SetStdout(f.stdout)
	return f
}

func testProject() *domain.Project {
	return &domain.Project{
		Name: domain.NewInternedString("svc"),
		Binaries: []domain.BinaryTarget{{
			Name:  domain.NewInternedString("svc-server"),
			Build: []string{"cargo", "build", "--release"},
		}},
		RuntimePackages: []string{"ca-certificates"},
		Port:            domain.DefaultPort,
		Flags:           domain.DefaultBuildFlags(),
	}
}

// publishedOutput lays out a store entry with one binary.
func publishedOutput(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "0011-svc-abc123")
	if err := os.MkdirAll(filepath.Join(dir, domain.BinDir), 0o750); err != nil {
		t.Fatal(err)
	}
	bin := filepath.Join(dir, domain.BinDir, "svc-server")
	if err := os.WriteFile(bin, []byte("elf"), 0o755); err != nil { //nolint:gosec // executable fixture
		t.Fatal(err)
	}
	return dir
}

func TestApp_Build_Install(t *testing.T) {
	output := publishedOutput(t)
	f := setupApp(t, output)
	f.loader.EXPECT().Load(gomock.Any()).Return(testProject(), nil)

	installDir := filepath.Join(t.TempDir(), "out")
	err := f.app.Build(context.Background(), app.BuildOptions{Install: installDir})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	installed := filepath.Join(installDir, domain.BinDir, "svc-server")
	data, err := os.ReadFile(installed)
	if err != nil {
		t.Fatalf("expected installed binary: %v", err)
	}
	if string(data) != "elf" {
		t.Errorf("expected binary bytes to be installed verbatim, got %q", data)
	}

	info, err := os.Stat(installed)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&0o111 == 0 {
		t.Error("expected installed binary to be executable")
	}
}

func TestApp_Build_Image(t *testing.T) {
	output := publishedOutput(t)
	f := setupApp(t, output)
	f.loader.EXPECT().Load(gomock.Any()).Return(testProject(), nil)

	f.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.ImageSpec) (domain.RuntimeImage, error) {
			if spec.PackagePath != output {
				t.Errorf("expected package path %q, got %q", output, spec.PackagePath)
			}
			if spec.Binary != "svc-server" {
				t.Errorf("expected app binary svc-server, got %q", spec.Binary)
			}
			if spec.Port != domain.DefaultPort {
				t.Errorf("expected port %d, got %d", domain.DefaultPort, spec.Port)
			}
			return domain.RuntimeImage{Dir: "/images/runtime"}, nil
		},
	)

	if err := f.app.Build(context.Background(), app.BuildOptions{Image: true}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.Contains(f.stdout.String(), "/images/runtime") {
		t.Errorf("expected image dir on stdout, got %q", f.stdout.String())
	}
}

func TestApp_Outputs(t *testing.T) {
	output := publishedOutput(t)
	f := setupApp(t, output)
	f.loader.EXPECT().Load(gomock.Any()).Return(testProject(), nil)
	f.composer.EXPECT().Compose(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ports.ShellEnv{ID: "env-id", Dir: "/state/shells/env-id"}, nil)

	if err := f.app.Outputs(context.Background()); err != nil {
		t.Fatalf("Outputs failed: %v", err)
	}

	out := f.stdout.String()
	for _, key := range []string{"packages", "devshell", "app"} {
		if !strings.Contains(out, key) {
			t.Errorf("expected %q entry in output, got %q", key, out)
		}
	}
	if !strings.Contains(out, filepath.Join(output, "bin", "svc-server")) {
		t.Errorf("expected app binary path in output, got %q", out)
	}
}
