package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packsmith/internal/adapters/config"
	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_TOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "packsmith.toml", `
manifest = "pack/manifest.json"
overrides = ["overrides", "/abs/extra"]
changed_configs = ["config/*.toml"]
clientside_id = [1, 2]

[info]
name = "Pack"
version = "1.2.0"
author = "someone"
`)

	cfg, err := newLoader(t).LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, domain.PackInfo{Name: "Pack", Version: "1.2.0", Author: "someone"}, cfg.Info)
	assert.Equal(t, filepath.Join(dir, "pack", "manifest.json"), cfg.ManifestPath)
	assert.Equal(t, []string{filepath.Join(dir, "overrides"), "/abs/extra"}, cfg.Overrides)
	assert.Equal(t, []string{"config/*.toml"}, cfg.ChangedConfigs)
	assert.Equal(t, []uint32{1, 2}, cfg.ClientsideIDs)
	assert.Equal(t, dir, cfg.BaseDir)

	excl := cfg.Exclusions()
	assert.True(t, excl.Contains(1))
	assert.True(t, excl.Contains(394468))
}

func TestLoadConfig_YAMLDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "packsmith.yml", `
info:
  name: Pack
  version: "2"
`)

	cfg, err := newLoader(t).LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "manifest.json"), cfg.ManifestPath)
	assert.Equal(t, []string{filepath.Join(dir, "overrides")}, cfg.Overrides)
	assert.Empty(t, cfg.ClientsideIDs)
	assert.Equal(t, len(domain.DefaultExclusions), cfg.Exclusions().Len())
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want error
	}{
		{
			name: "missing file",
			path: filepath.Join(dir, "absent.toml"),
			want: domain.ErrConfigReadFailed,
		},
		{
			name: "unsupported extension",
			path: writeFile(t, dir, "packsmith.json", `{}`),
			want: domain.ErrUnsupportedConfigFormat,
		},
		{
			name: "malformed toml",
			path: writeFile(t, dir, "broken.toml", "[info\nname="),
			want: domain.ErrConfigParseFailed,
		},
		{
			name: "missing version",
			path: writeFile(t, dir, "noversion.yaml", "info:\n  name: Pack\n"),
			want: domain.ErrMissingPackInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).LoadConfig(tt.path)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "manifest.json", `{
  "minecraft": {"version": "1.20.1", "modLoaders": [{"id": "forge-47.4.0", "primary": true}]},
  "manifestType": "minecraftModpack",
  "manifestVersion": 1,
  "name": "X", "version": "1", "author": "Y",
  "files": [{"projectID": 238222, "fileID": 7014291, "required": true}],
  "overrides": "overrides"
}`)

	m, err := newLoader(t).LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", m.Minecraft.Version)
	assert.Len(t, m.Files, 1)
}

func TestLoadManifest_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := newLoader(t).LoadManifest(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, domain.ErrManifestReadFailed)

	_, err = newLoader(t).LoadManifest(writeFile(t, dir, "bad.json", "{"))
	assert.ErrorIs(t, err, domain.ErrManifestParseFailed)
}
