package download

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsmith/internal/adapters/cas"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsmith/internal/adapters/catalog"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsmith/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsmith/internal/adapters/settings" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/packsmith/internal/engine/retry"
)

// NodeID is the unique identifier for the downloader Graft node.
const NodeID graft.ID = "engine.downloader"

func init() {
	graft.Register(graft.Node[ports.Downloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			cas.NodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: func(ctx context.Context) (ports.Downloader, error) {
			client, err := graft.Dep[ports.Catalog](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ResolutionStore](ctx)
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

			policy := retry.Policy{Attempts: s.RetryAttempts, Delay: s.RetryDelay}
			return NewDownloader(client, store, log, policy), nil
		},
	})
}
