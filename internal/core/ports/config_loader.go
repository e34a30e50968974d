package ports

import "go.trai.ch/string16/internal/core/domain"

// ConfigLoader defines the interface for loading CLI settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path. An empty path searches the working
	// directory for the default file names and falls back to defaults.
	Load(path string) (*domain.Config, error)
}
