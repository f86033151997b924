package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsmith/internal/adapters/settings"
	"go.trai.ch/packsmith/internal/core/ports"
)

// NodeID is the unique identifier for the resolution store Graft node.
const NodeID graft.ID = "adapter.resolution_store"

func init() {
	graft.Register(graft.Node[ports.ResolutionStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.ResolutionStore, error) {
			s, err := graft.Dep[settings.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(s.CacheDir)
		},
	})
}
