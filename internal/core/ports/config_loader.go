package ports

import "go.trai.ch/packsmith/internal/core/domain"

// ConfigLoader defines the interface for loading the build inputs.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadConfig reads the build file at path.
	LoadConfig(path string) (*domain.BuildConfig, error)

	// LoadManifest reads the pack manifest at path.
	LoadManifest(path string) (*domain.Manifest, error)
}
