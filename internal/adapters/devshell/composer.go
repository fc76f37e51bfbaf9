// Package devshell composes the interactive development environment.
package devshell

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

var _ ports.ShellComposer = (*Composer)(nil)

// Realizer resolves a generated shell expression into environment variables.
// The default implementation shells out to the system package realizer; tests
// inject fakes.
type Realizer func(ctx context.Context, expr string) (map[string]string, error)

// Composer assembles the interactive environment from the same lock the
// package derivation consumes, plus developer-only tooling. It is not part
// of the reproducible artifact chain: its output is a live environment.
type Composer struct {
	stateDir string
	realize  Realizer
}

// NewComposer creates a Composer keeping its cache and markers under
// stateDir.
func NewComposer(stateDir string) *Composer {
	return &Composer{
		stateDir: filepath.Clean(stateDir),
		realize:  realizeWithNix,
	}
}

// NewComposerWithRealizer creates a Composer with a custom realizer. Used by
// tests.
func NewComposerWithRealizer(stateDir string, realize Realizer) *Composer {
	return &Composer{
		stateDir: filepath.Clean(stateDir),
		realize:  realize,
	}
}

// Compose resolves the shell environment for the project: every lock
// dependency, the developer extras, and the migration tool pinned in the
// lock's tools section. The one-time provision step runs at most once per
// environment ID.
func (c *Composer) Compose(ctx context.Context, project *domain.Project, lock *domain.Lockfile) (ports.ShellEnv, error) {
	packages, err := c.shellPackages(project, lock)
	if err != nil {
		return ports.ShellEnv{}, err
	}

	id := domain.GenerateEnvID(packages)

	vars, err := c.resolveEnv(ctx, id, packages)
	if err != nil {
		return ports.ShellEnv{}, err
	}

	shellDir := filepath.Join(c.stateDir, "shells", id)
	provisioned, err := c.provision(shellDir, id)
	if err != nil {
		return ports.ShellEnv{}, err
	}

	env := make([]string, 0, len(vars)+1)
	for k, v := range vars {
		env = append(env, k+"="+v)
	}
	env = append(env, "KILN_SHELL="+id)
	sort.Strings(env)

	return ports.ShellEnv{
		ID:          id,
		Dir:         shellDir,
		Env:         env,
		Provisioned: provisioned,
	}, nil
}

// shellPackages collects name->pin for everything the shell contains: lock
// dependencies, developer extras, and the declared migration tool. Extras
// without a lock entry are a lock mismatch, same as for packaging: the shell
// shares the packaging resolution, it never resolves on its own.
func (c *Composer) shellPackages(project *domain.Project, lock *domain.Lockfile) (map[string]string, error) {
	packages := make(map[string]string)
	for name, entry := range lock.Packages {
		packages[name] = pin(entry)
	}

	for _, name := range project.DevTools {
		entry, ok := lock.Entry(name)
		if !ok {
			err := zerr.With(domain.ErrLockMismatch, "name", name)
			return nil, zerr.With(err, "reason", "dev tool not locked")
		}
		packages[name] = pin(entry)
	}

	if project.MigrationTool != "" {
		entry, ok := lock.Tools[project.MigrationTool]
		if !ok {
			err := zerr.With(domain.ErrLockMismatch, "name", project.MigrationTool)
			return nil, zerr.With(err, "reason", "migration tool not locked")
		}
		packages[project.MigrationTool] = pin(entry)
	}
	return packages, nil
}

func pin(entry domain.LockedPackage) string {
	return entry.Version.String() + "#" + entry.Hash.String()
}

// resolveEnv returns the environment variables for the package set, using
// the on-disk cache keyed by environment ID.
func (c *Composer) resolveEnv(ctx context.Context, id string, packages map[string]string) (map[string]string, error) {
	if cached, ok := c.checkCache(id); ok {
		return cached, nil
	}

	expr := GenerateShellExpression(packages)
	vars, err := c.realize(ctx, expr)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to realize shell environment")
	}

	if err := c.updateCache(id, vars); err != nil {
		return nil, zerr.Wrap(err, "failed to update shell cache")
	}
	return vars, nil
}

// provision performs the one-time setup for the environment, guarded by a
// marker file. The migration tool itself is part of the resolved package
// set; provisioning only records that the shell is ready.
func (c *Composer) provision(dir, id string) (bool, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return false, zerr.Wrap(err, "failed to create shell state directory")
	}

	marker := filepath.Join(dir, ".provisioned")
	if _, err := os.Stat(marker); err == nil {
		return false, nil
	}

	if err := os.WriteFile(marker, []byte(id+"\n"), filePerm); err != nil {
		return false, zerr.Wrap(err, "failed to write provision marker")
	}
	return true, nil
}

type cacheFile map[string]map[string]string

func (c *Composer) cachePath() string {
	return filepath.Join(c.stateDir, "shell-cache.json")
}

func (c *Composer) checkCache(id string) (map[string]string, bool) {
	f, err := os.Open(c.cachePath())
	if err != nil {
		return nil, false
	}
	defer func() { _ = f.Close() }()

	var cache cacheFile
	if err := json.NewDecoder(f).Decode(&cache); err != nil {
		return nil, false
	}

	val, ok := cache[id]
	return val, ok
}

func (c *Composer) updateCache(id string, vars map[string]string) error {
	cache := make(cacheFile)
	content, err := os.ReadFile(c.cachePath())
	if err == nil {
		// A corrupted cache is ignored and overwritten.
		_ = json.Unmarshal(content, &cache)
	}

	cache[id] = vars

	if err := os.MkdirAll(c.stateDir, dirPerm); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.cachePath(), data, filePerm)
}

// realizeWithNix resolves the expression via the system realizer.
func realizeWithNix(ctx context.Context, expr string) (map[string]string, error) {
	//nolint:gosec // expr is generated from pinned lock entries
	cmd := exec.CommandContext(ctx, "nix", "print-dev-env",
		"--extra-experimental-features", "nix-command flakes",
		"--json", "--expr", expr)
	output, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "realizer command failed"),
			"stderr", stderr),
			"expression", expr,
		)
	}

	var envData struct {
		Variables map[string]struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"variables"`
	}
	if err := json.Unmarshal(output, &envData); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse realizer output"), "output", string(output))
	}

	vars := make(map[string]string)
	for k, v := range envData.Variables {
		if v.Type == "exported" {
			vars[k] = v.Value
		}
	}
	return vars, nil
}
