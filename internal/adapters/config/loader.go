// Package config provides the kiln.yaml project spec loader.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the default project spec file name.
const Filename = "kiln.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default file name.
func NewLoader() *Loader {
	return &Loader{Filename: Filename}
}

// Load reads the project spec from the given working directory.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a project spec file and maps it into the domain.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read project spec"), "path", path)
	}

	var file Kilnfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse project spec"), "path", path)
	}

	if file.Name == "" {
		return nil, zerr.With(zerr.New("project name is required"), "path", path)
	}

	project := &domain.Project{
		Name:            domain.NewInternedString(file.Name),
		Binaries:        mapBinaries(file),
		TestCommand:     file.Test,
		DatabaseURL:     file.Database,
		Excludes:        mapExcludes(file.Exclude),
		RuntimePackages: file.Runtime,
		DevTools:        file.DevTools,
		MigrationTool:   file.MigTool,
		Port:            file.Port,
		Flags:           mapFlags(file.Flags),
		Manifest: domain.Manifest{
			Dependencies: file.Deps,
			Tools:        file.Tools,
		},
	}

	if project.Port == 0 {
		project.Port = domain.DefaultPort
	}
	return project, nil
}

func mapBinaries(file Kilnfile) []domain.BinaryTarget {
	if len(file.Binaries) == 0 {
		// Single-binary convention: the server process.
		return []domain.BinaryTarget{{
			Name: domain.NewInternedString(file.Name + "-server"),
		}}
	}

	targets := make([]domain.BinaryTarget, len(file.Binaries))
	for i, dto := range file.Binaries {
		targets[i] = domain.BinaryTarget{
			Name:  domain.NewInternedString(dto.Name),
			Build: dto.Build,
		}
	}
	return targets
}

// mapExcludes appends the exclusions every workspace carries: the store and
// prior build outputs, environment metadata, machine-local configuration and
// lock-adjacent tooling config.
func mapExcludes(declared []string) []string {
	base := []string{"kiln-out", ".env*", "*.local.yaml", ".kiln"}
	return append(base, declared...)
}

func mapFlags(dto *FlagsDTO) domain.BuildFlags {
	flags := domain.DefaultBuildFlags()
	if dto == nil {
		return flags
	}
	if dto.OfflineQueryCheck != nil {
		flags.OfflineQueryCheck = *dto.OfflineQueryCheck
	}
	if dto.RunTests != nil {
		flags.RunTests = *dto.RunTests
	}
	return flags
}
