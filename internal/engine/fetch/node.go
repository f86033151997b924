package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsmith/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsmith/internal/adapters/settings"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsmith/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/packsmith/internal/engine/download"
)

// NodeID is the unique identifier for the asset batch Graft node.
const NodeID graft.ID = "engine.fetch"

func init() {
	graft.Register(graft.Node[*Batch]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			download.NodeID,
			logger.NodeID,
			progrock.NodeID,
			settings.NodeID,
		},
		Run: func(ctx context.Context) (*Batch, error) {
			downloader, err := graft.Dep[ports.Downloader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[settings.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewBatch(downloader, log, telemetry, s.Concurrency), nil
		},
	})
}
