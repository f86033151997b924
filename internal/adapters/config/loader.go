// Package config loads the build file, the pack manifest and process settings.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for TOML and YAML build files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// LoadConfig reads the build file at path. The format follows the file extension.
// Relative manifest and override paths are resolved against the build file's directory.
func (l *Loader) LoadConfig(path string) (*domain.BuildConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(domain.Because(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file buildFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, domain.Fail(domain.ErrUnsupportedConfigFormat, "path", path, "extension", ext)
	}
	if err != nil {
		return nil, zerr.With(domain.Because(domain.ErrConfigParseFailed, err), "path", path)
	}

	if file.Info.Name == "" || file.Info.Version == "" {
		return nil, domain.Fail(domain.ErrMissingPackInfo, "path", path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(domain.Because(domain.ErrConfigReadFailed, err), "path", path)
	}
	baseDir := filepath.Dir(absPath)

	manifest := file.Manifest
	if manifest == "" {
		manifest = domain.ManifestFileName
	}

	overrides := file.Overrides
	if overrides == nil {
		overrides = defaultOverrides
	}
	resolved := make([]string, 0, len(overrides))
	for _, dir := range overrides {
		resolved = append(resolved, resolve(baseDir, dir))
	}

	cfg := &domain.BuildConfig{
		Info: domain.PackInfo{
			Name:    file.Info.Name,
			Version: file.Info.Version,
			Author:  file.Info.Author,
		},
		ManifestPath:   resolve(baseDir, manifest),
		Overrides:      resolved,
		ChangedConfigs: file.ChangedConfigs,
		ClientsideIDs:  file.ClientsideID,
		BaseDir:        baseDir,
	}

	l.logger.Debug("loaded build file",
		"path", absPath,
		"name", cfg.Info.Name,
		"version", cfg.Info.Version,
		"clientside_ids", len(cfg.ClientsideIDs))
	return cfg, nil
}

// LoadManifest reads the CurseForge manifest at path. Fields packsmith does not model
// are kept and written back unchanged.
func (l *Loader) LoadManifest(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the build file
	if err != nil {
		return nil, zerr.With(domain.Because(domain.ErrManifestReadFailed, err), "path", path)
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(domain.Because(domain.ErrManifestParseFailed, err), "path", path)
	}

	l.logger.Debug("loaded manifest", "path", path, "files", len(m.Files))
	return &m, nil
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
