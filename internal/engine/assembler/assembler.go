// Package assembler turns a manifest and a build file into server and client packs.
package assembler

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/packsmith/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// Stage names of the pack pipeline.
const (
	StageFetchMods    = "fetch-mods"
	StageFetchRuntime = "fetch-runtime"
	StageServerPack   = "server-pack"
	StageClientPack   = "client-pack"
)

// AssetFetcher downloads manifest assets into the mods staging directory.
type AssetFetcher interface {
	Fetch(ctx context.Context, assets []domain.AssetRef, layout domain.Layout, exclusions domain.ExclusionSet) (*domain.FetchReport, error)
}

// RuntimeProvisioner downloads the loader installer into the loader staging directory.
type RuntimeProvisioner interface {
	Provision(ctx context.Context, spec domain.RuntimeSpec, layout domain.Layout) error
}

// Plan is everything one build needs.
type Plan struct {
	Config   *domain.BuildConfig
	Manifest *domain.Manifest
	Layout   domain.Layout
}

// Assembler runs the pack pipeline through the scheduler.
type Assembler struct {
	scheduler   *scheduler.Scheduler
	mods        AssetFetcher
	runtime     RuntimeProvisioner
	merger      ports.TreeMerger
	archiver    ports.Archiver
	resolver    ports.InputResolver
	logger      ports.Logger
	parallelism int
}

// Deps groups the collaborators of an Assembler.
type Deps struct {
	Scheduler   *scheduler.Scheduler
	Mods        AssetFetcher
	Runtime     RuntimeProvisioner
	Merger      ports.TreeMerger
	Archiver    ports.Archiver
	Resolver    ports.InputResolver
	Logger      ports.Logger
	Parallelism int
}

// New creates an Assembler.
func New(deps Deps) *Assembler {
	return &Assembler{
		scheduler:   deps.Scheduler,
		mods:        deps.Mods,
		runtime:     deps.Runtime,
		merger:      deps.Merger,
		archiver:    deps.Archiver,
		resolver:    deps.Resolver,
		logger:      deps.Logger,
		parallelism: deps.Parallelism,
	}
}

// extraFile is a changed_configs match and its path relative to a staging root.
type extraFile struct {
	src string
	rel string
}

// Assemble fetches assets and the runtime, stages both trees and archives them.
// The server and client stages run concurrently once their inputs are fetched.
func (a *Assembler) Assemble(ctx context.Context, plan Plan) (*domain.BuildResult, error) {
	extras, err := a.resolveExtras(plan.Config)
	if err != nil {
		return nil, err
	}

	result := &domain.BuildResult{
		ServerArchive: plan.Layout.ServerArchive(plan.Config.Info),
		ClientArchive: plan.Layout.ClientArchive(plan.Config.Info),
	}

	graph := domain.NewGraph()
	stages := []domain.Stage{
		{
			Name: StageFetchMods,
			Run: func(ctx context.Context) error {
				report, err := a.mods.Fetch(ctx, plan.Manifest.Files, plan.Layout, plan.Config.Exclusions())
				if report != nil {
					result.Report = *report
				}
				return err
			},
		},
		{
			Name: StageFetchRuntime,
			Run: func(ctx context.Context) error {
				return a.fetchRuntime(ctx, plan)
			},
		},
		{
			Name:         StageServerPack,
			Dependencies: []string{StageFetchMods, StageFetchRuntime},
			Run: func(ctx context.Context) error {
				return a.serverPack(ctx, plan, extras, result.ServerArchive)
			},
		},
		{
			Name:         StageClientPack,
			Dependencies: []string{StageFetchMods},
			Run: func(ctx context.Context) error {
				return a.clientPack(ctx, plan, extras, result.ClientArchive)
			},
		},
	}
	for _, stage := range stages {
		if err := graph.AddStage(stage); err != nil {
			return nil, err
		}
	}

	if err := a.scheduler.Run(ctx, graph, a.parallelism); err != nil {
		return nil, domain.Because(domain.ErrBuildFailed, err)
	}

	a.logger.Info("server pack written", "path", result.ServerArchive)
	a.logger.Info("client pack written", "path", result.ClientArchive)
	return result, nil
}

func (a *Assembler) fetchRuntime(ctx context.Context, plan Plan) error {
	loader, ok := plan.Manifest.FirstLoader()
	if !ok {
		a.logger.Warn("manifest declares no mod loader, skipping installer")
		return nil
	}

	spec, err := domain.ParseRuntimeSpec(plan.Manifest.Minecraft.Version, loader.ID)
	if err != nil {
		return err
	}
	return a.runtime.Provision(ctx, spec, plan.Layout)
}

func (a *Assembler) serverPack(ctx context.Context, plan Plan, extras []extraFile, archive string) error {
	root := plan.Layout.ServerDir()
	if err := makeRoot(root); err != nil {
		return err
	}

	if _, err := a.merger.Merge(ctx, plan.Layout.ModsDir(), filepath.Join(root, "mods")); err != nil {
		return err
	}
	if err := a.stage(ctx, plan.Config.Overrides, extras, root); err != nil {
		return err
	}
	if _, err := a.merger.Merge(ctx, plan.Layout.LoaderDir(), root); err != nil {
		return err
	}

	return a.archiver.Build(ctx, root, archive)
}

func (a *Assembler) clientPack(ctx context.Context, plan Plan, extras []extraFile, archive string) error {
	root := plan.Layout.ClientDir()
	if err := makeRoot(root); err != nil {
		return err
	}

	if err := a.stage(ctx, plan.Config.Overrides, extras, filepath.Join(root, plan.Manifest.OverridesDir())); err != nil {
		return err
	}
	if err := a.writeManifest(plan); err != nil {
		return err
	}

	return a.archiver.Build(ctx, root, archive)
}

func makeRoot(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(domain.Because(domain.ErrWriteFailed, err), "path", dir)
	}
	return nil
}

// stage merges every override directory, then the extra files, into dst.
func (a *Assembler) stage(ctx context.Context, overrides []string, extras []extraFile, dst string) error {
	for _, dir := range overrides {
		if _, err := a.merger.Merge(ctx, dir, dst); err != nil {
			return err
		}
	}

	for _, extra := range extras {
		if err := a.merger.CopyFile(extra.src, filepath.Join(dst, extra.rel)); err != nil {
			a.logger.Error(err)
		}
	}
	return nil
}

func (a *Assembler) writeManifest(plan Plan) error {
	path := plan.Layout.ClientManifest()

	data, err := plan.Manifest.WithInfo(plan.Config.Info).Encode()
	if err != nil {
		return zerr.With(domain.Because(domain.ErrManifestWriteFailed, err), "path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(domain.Because(domain.ErrManifestWriteFailed, err), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil { //nolint:gosec // Path is under the staging tree
		return zerr.With(domain.Because(domain.ErrManifestWriteFailed, err), "path", path)
	}
	return nil
}

// resolveExtras expands changed_configs. A match keeps its path relative to the
// build file directory; a match outside it lands at the staging root.
func (a *Assembler) resolveExtras(cfg *domain.BuildConfig) ([]extraFile, error) {
	if len(cfg.ChangedConfigs) == 0 {
		return nil, nil
	}

	paths, err := a.resolver.ResolveInputs(cfg.ChangedConfigs, cfg.BaseDir)
	if err != nil {
		return nil, err
	}

	extras := make([]extraFile, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(cfg.BaseDir, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			rel = filepath.Base(path)
		}
		extras = append(extras, extraFile{src: path, rel: rel})
	}
	return extras, nil
}
