package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsmith/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/packsmith/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/packsmith/internal/adapters/settings"           //nolint:depguard // Wired in app layer
	"go.trai.ch/packsmith/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/packsmith/internal/engine/assembler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			assembler.NodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			builder, err := graft.Dep[*assembler.Assembler](ctx)
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

			return New(loader, builder, log, s.CacheDir), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
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

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
