package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsmith/internal/adapters/logger"
	"go.trai.ch/packsmith/internal/adapters/settings"
	"go.trai.ch/packsmith/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	MergerNodeID   graft.ID = "adapter.fs.merger"
	ArchiverNodeID graft.ID = "adapter.fs.archiver"
)

func init() {
	// Walker Node (Concrete implementation needed by Merger)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.InputResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InputResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.TreeMerger]{
		ID:        MergerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, logger.NodeID, settings.NodeID},
		Run: func(ctx context.Context) (ports.TreeMerger, error) {
			walker, err := graft.Dep[*Walker](ctx)
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
			return NewMerger(walker, log, s.Concurrency), nil
		},
	})

	graft.Register(graft.Node[ports.Archiver]{
		ID:        ArchiverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Archiver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewArchiver(log), nil
		},
	})
}
