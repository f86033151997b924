package assembler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsmith/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsmith/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsmith/internal/adapters/settings" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/packsmith/internal/engine/fetch"
	"go.trai.ch/packsmith/internal/engine/loader"
	"go.trai.ch/packsmith/internal/engine/scheduler"
)

// NodeID is the unique identifier for the assembler Graft node.
const NodeID graft.ID = "engine.assembler"

func init() {
	graft.Register(graft.Node[*Assembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			scheduler.NodeID,
			fetch.NodeID,
			loader.NodeID,
			fs.MergerNodeID,
			fs.ArchiverNodeID,
			fs.ResolverNodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: func(ctx context.Context) (*Assembler, error) {
			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}
			batch, err := graft.Dep[*fetch.Batch](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[*loader.Locator](ctx)
			if err != nil {
				return nil, err
			}
			merger, err := graft.Dep[ports.TreeMerger](ctx)
			if err != nil {
				return nil, err
			}
			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[settings.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(Deps{
				Scheduler:   sched,
				Mods:        batch,
				Runtime:     locator,
				Merger:      merger,
				Archiver:    archiver,
				Resolver:    resolver,
				Logger:      log,
				Parallelism: s.Concurrency,
			}), nil
		},
	})
}
