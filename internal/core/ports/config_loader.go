package ports

import "go.trai.ch/kiln/internal/core/domain"

// ConfigLoader loads the workspace project spec.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project spec from the given working directory.
	Load(cwd string) (*domain.Project, error)
}
