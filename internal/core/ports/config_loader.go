package ports

import "go.trai.ch/stylo/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path and returns the options it sets.
	// Relative paths inside the file are resolved against the file's directory.
	// It returns domain.ErrConfigNotFound when the file does not exist.
	Load(path string) (domain.ConfigOverrides, error)
}
