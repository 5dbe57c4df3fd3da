package ports

import "go.trai.ch/modup/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the resolved settings.
	// An empty path selects the default lookup order.
	Load(path string) (*domain.Settings, error)
}
