package registry_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/derivation"
	"go.trai.ch/kiln/internal/registry"
	"go.uber.org/mock/gomock"
)

// setupEvaluator wires an evaluator whose package chain resolves to a cached
// store entry and whose shell chain composes a fake environment.
func setupEvaluator(t *testing.T, storePath string) *registry.Evaluator {
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

	lock := mocks.NewMockLockResolver(ctrl)
	lock.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(&domain.Lockfile{Version: 1}, nil).AnyTimes()

	hasher := mocks.NewMockHasher(ctrl)
	hasher.EXPECT().ComputeInputHash(gomock.Any()).Return("0011", nil).AnyTimes()

	revision := mocks.NewMockRevisionResolver(ctrl)
	revision.EXPECT().Version(gomock.Any()).Return("abc123").AnyTimes()

	queries := mocks.NewMockQueryValidator(ctrl)
	toolchain := mocks.NewMockToolchain(ctrl)

	store := mocks.NewMockDerivationStore(ctrl)
	store.EXPECT().Lookup("0011-svc-abc123").Return(storePath, nil).AnyTimes()

	builder := derivation.NewBuilder(
		filter, lock, hasher, revision, queries, toolchain, store, telemetry,
	)

	composer := mocks.NewMockShellComposer(ctrl)
	composer.EXPECT().Compose(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ports.ShellEnv{
			ID:  "env-id",
			Dir: "/state/shells/env-id",
			Env: []string{"KILN_SHELL=env-id"},
		}, nil).AnyTimes()

	return registry.NewEvaluator(builder, lock, composer)
}

func testProject() *domain.Project {
	return &domain.Project{
		Name: domain.NewInternedString("svc"),
		Binaries: []domain.BinaryTarget{{
			Name:  domain.NewInternedString("svc-server"),
			Build: []string{"cargo", "build", "--release"},
		}},
		Flags: domain.DefaultBuildFlags(),
	}
}

func TestEvaluator_Evaluate(t *testing.T) {
	storePath := "/store/0011-svc-abc123"
	evaluator := setupEvaluator(t, storePath)

	reg, err := evaluator.Evaluate(context.Background(), t.TempDir(), testProject())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	packages, err := reg.Get(domain.OutputPackages)
	if err != nil {
		t.Fatalf("Get packages failed: %v", err)
	}
	if packages.Path != storePath {
		t.Errorf("expected packages path %q, got %q", storePath, packages.Path)
	}

	shell, err := reg.Get(domain.OutputDevShell)
	if err != nil {
		t.Fatalf("Get devshell failed: %v", err)
	}
	if shell.Path != "/state/shells/env-id" {
		t.Errorf("expected devshell path, got %q", shell.Path)
	}

	app, err := reg.Get(domain.OutputApp)
	if err != nil {
		t.Fatalf("Get app failed: %v", err)
	}
	wantApp := filepath.Join(storePath, "bin", "svc-server")
	if app.Path != wantApp {
		t.Errorf("expected app path %q, got %q", wantApp, app.Path)
	}
	if len(app.Invocation) != 1 || app.Invocation[0] != wantApp {
		t.Errorf("expected invocation [%s], got %v", wantApp, app.Invocation)
	}
}

func TestRegistry_Get_UnknownKey(t *testing.T) {
	evaluator := setupEvaluator(t, "/store/0011-svc-abc123")

	reg, err := evaluator.Evaluate(context.Background(), t.TempDir(), testProject())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if _, err := reg.Get(domain.OutputKey("images")); !errors.Is(err, domain.ErrUnknownOutput) {
		t.Fatalf("expected ErrUnknownOutput, got %v", err)
	}
}
