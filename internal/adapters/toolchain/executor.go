// Package toolchain runs the workspace compile and test commands.
package toolchain

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Toolchain = (*Executor)(nil)

// Executor implements ports.Toolchain using os/exec. It never reaches for
// the network itself; whether the command can is up to the surrounding
// sandbox.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Compile runs the compile step in the source root. The destination path is
// exported as KILN_OUTPUT; the command must place the binary there. A
// non-zero exit propagates as domain.ErrCompileFailed with the exit code.
func (e *Executor) Compile(ctx context.Context, spec ports.CompileSpec) error {
	env := append([]string{"KILN_OUTPUT=" + spec.Output}, spec.Env...)
	if err := e.run(ctx, spec.Dir, spec.Command, env, spec.Log); err != nil {
		return zerr.With(joinSentinel(domain.ErrCompileFailed, err), "output", spec.Output)
	}
	return nil
}

// Test runs the workspace test suite.
func (e *Executor) Test(ctx context.Context, spec ports.TestSpec) error {
	if err := e.run(ctx, spec.Dir, spec.Command, spec.Env, spec.Log); err != nil {
		return joinSentinel(domain.ErrTestsFailed, err)
	}
	return nil
}

func (e *Executor) run(ctx context.Context, dir string, command, extraEnv []string, log io.Writer) error {
	if len(command) == 0 {
		return zerr.New("empty command")
	}

	name := command[0]
	args := command[1:]
	e.logger.Info("running " + strings.Join(command, " "))
	cmdEnv := mergeEnvironment(os.Environ(), extraEnv)

	// Resolve the executable against the merged PATH, not the process PATH.
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // command comes from the project spec
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Dir = dir
	cmd.Env = cmdEnv

	out := log
	if out == nil {
		out = io.Discard
	}
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(wrapped, "command", name)
	}
	return nil
}

// joinSentinel attaches the sentinel's identity to a concrete failure so
// callers can match with errors.Is while keeping the verbatim cause.
func joinSentinel(sentinel, err error) error {
	return zerr.Wrap(sentinel, err.Error())
}

// mergeEnvironment layers extra entries over the base environment. PATH from
// extra is prepended to the base PATH rather than replacing it.
func mergeEnvironment(base, extra []string) []string {
	envMap := make(map[string]string, len(base)+len(extra))
	var order []string

	set := func(k, v string) {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}
	for _, entry := range extra {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if basePath, exists := envMap["PATH"]; exists && basePath != "" {
				v = v + string(os.PathListSeparator) + basePath
			}
		}
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the PATH of the provided
// environment.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
