// Package app implements the application layer for packsmith.
package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/packsmith/internal/engine/assembler"
	"go.trai.ch/zerr"
)

// PackBuilder runs the pack pipeline for one plan.
type PackBuilder interface {
	Assemble(ctx context.Context, plan assembler.Plan) (*domain.BuildResult, error)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      PackBuilder
	logger       ports.Logger
	cacheDir     string
}

// New creates a new App instance. cacheDir is the catalog resolution cache removed by Clean.
func New(loader ports.ConfigLoader, builder PackBuilder, logger ports.Logger, cacheDir string) *App {
	return &App{
		configLoader: loader,
		builder:      builder,
		logger:       logger,
		cacheDir:     cacheDir,
	}
}

// BuildOptions configures the Build method.
type BuildOptions struct {
	// ConfigPath is the build file. Defaults to packsmith.toml in the working directory.
	ConfigPath string
	// OutputDir is the staging and export root. Relative paths are resolved against
	// the build file directory. Defaults to "build".
	OutputDir string
}

// Build loads the build file and its manifest and produces both packs.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*domain.BuildResult, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.ConfigFileName
	}

	cfg, err := a.configLoader.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	manifest, err := a.configLoader.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}

	layout := domain.NewLayout(outputRoot(cfg.BaseDir, opts.OutputDir))
	a.logger.Info("building pack",
		"name", cfg.Info.Name,
		"version", cfg.Info.Version,
		"minecraft", manifest.Minecraft.Version,
		"output", layout.Root,
	)

	result, err := a.builder.Assemble(ctx, assembler.Plan{
		Config:   cfg,
		Manifest: manifest,
		Layout:   layout,
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("build finished",
		"server", result.ServerArchive,
		"client", result.ClientArchive,
		"failed_assets", result.Report.Failed,
	)
	return result, nil
}

// CleanOptions configures the Clean method.
type CleanOptions struct {
	// ConfigPath locates the output directory the same way Build does. When the
	// build file cannot be read, OutputDir is taken relative to the working directory.
	ConfigPath string
	OutputDir  string
	// Cache also removes the catalog resolution cache.
	Cache bool
}

// Clean removes the build output directory and, optionally, the resolution cache.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.ConfigFileName
	}

	base := ""
	if cfg, err := a.configLoader.LoadConfig(configPath); err == nil {
		base = cfg.BaseDir
	} else {
		a.logger.Debug("build file not readable, cleaning relative to working directory", "error", err)
	}

	root := outputRoot(base, opts.OutputDir)
	if err := checkCleanRoot(root, base); err != nil {
		return err
	}

	paths := []string{root}
	if opts.Cache {
		paths = append(paths, a.cacheDir)
	}

	for _, path := range paths {
		if err := os.RemoveAll(path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", path)
		}
		a.logger.Info("removed", "path", path)
	}
	return nil
}

func outputRoot(base, outputDir string) string {
	if outputDir == "" {
		outputDir = domain.DefaultOutputDir
	}
	if filepath.IsAbs(outputDir) || base == "" {
		return outputDir
	}
	return filepath.Join(base, outputDir)
}

// checkCleanRoot rejects a root that is the project directory (or the working directory
// when no build file was read) or one of its ancestors.
func checkCleanRoot(root, base string) error {
	if base == "" {
		base = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", root)
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", base)
	}

	rel, err := filepath.Rel(absRoot, absBase)
	if err != nil {
		return nil
	}
	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return domain.Fail(domain.ErrUnsafeCleanPath, "path", absRoot)
	}
	return nil
}
