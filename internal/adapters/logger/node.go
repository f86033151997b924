package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsmith/internal/adapters/settings"
	"go.trai.ch/packsmith/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			s, err := graft.Dep[settings.Settings](ctx)
			if err != nil {
				return nil, err
			}

			level := slog.LevelInfo
			if s.Debug {
				level = slog.LevelDebug
			}
			return Open(os.Stderr, level, s.LogFile)
		},
	})
}
