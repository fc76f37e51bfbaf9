package toolchain_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"go.trai.ch/kiln/internal/adapters/toolchain"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-based test requires a Unix shell")
	}
}

func TestExecutor_Compile_WritesOutput(t *testing.T) {
	requireUnix(t)
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "bin", "svc-server")
	if err := os.MkdirAll(filepath.Dir(output), 0o750); err != nil {
		t.Fatal(err)
	}

	executor := toolchain.NewExecutor(nopLogger{})
	var log bytes.Buffer
	err := executor.Compile(context.Background(), ports.CompileSpec{
		Dir:     tmpDir,
		Command: []string{"sh", "-c", `printf compiled > "$KILN_OUTPUT" && echo done`},
		Output:  output,
		Log:     &log,
	})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("expected binary at KILN_OUTPUT: %v", err)
	}
	if string(data) != "compiled" {
		t.Errorf("expected compiled bytes, got %q", data)
	}
	if !strings.Contains(log.String(), "done") {
		t.Errorf("expected command output in log, got %q", log.String())
	}
}

func TestExecutor_Compile_EnvLayering(t *testing.T) {
	requireUnix(t)
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "probe")

	executor := toolchain.NewExecutor(nopLogger{})
	var log bytes.Buffer
	err := executor.Compile(context.Background(), ports.CompileSpec{
		Dir:     tmpDir,
		Command: []string{"sh", "-c", `echo "$QUERY_CHECK_OFFLINE:$SOURCE_DATE_EPOCH" > "$KILN_OUTPUT"`},
		Output:  output,
		Env:     []string{"QUERY_CHECK_OFFLINE=true", "SOURCE_DATE_EPOCH=0"},
		Log:     &log,
	})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "true:0" {
		t.Errorf("expected layered env values, got %q", data)
	}
}

func TestExecutor_Compile_NonZeroExit(t *testing.T) {
	requireUnix(t)
	executor := toolchain.NewExecutor(nopLogger{})

	err := executor.Compile(context.Background(), ports.CompileSpec{
		Dir:     t.TempDir(),
		Command: []string{"sh", "-c", "exit 3"},
		Output:  filepath.Join(t.TempDir(), "out"),
	})
	if !errors.Is(err, domain.ErrCompileFailed) {
		t.Fatalf("expected ErrCompileFailed, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected zerr.Error, got %T", err)
	}
	if got, ok := zErr.Metadata()["output"].(string); !ok || got == "" {
		t.Errorf("expected output metadata, got %v", got)
	}
}

func TestExecutor_Test_Failure(t *testing.T) {
	requireUnix(t)
	executor := toolchain.NewExecutor(nopLogger{})

	err := executor.Test(context.Background(), ports.TestSpec{
		Dir:     t.TempDir(),
		Command: []string{"sh", "-c", "exit 1"},
	})
	if !errors.Is(err, domain.ErrTestsFailed) {
		t.Fatalf("expected ErrTestsFailed, got %v", err)
	}
}

func TestExecutor_EmptyCommand(t *testing.T) {
	executor := toolchain.NewExecutor(nopLogger{})
	if err := executor.Compile(context.Background(), ports.CompileSpec{Dir: t.TempDir()}); err == nil {
		t.Fatal("expected error for empty command")
	}
}
