package ports

import "go.trai.ch/atlas/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd to the nearest atlas.yaml and returns the merged configuration.
	// Defaults are returned when no file is found.
	Load(cwd string) (*domain.Config, error)
}
