package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/resolution" //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/depcache/internal/engine/depcache"
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
			resolution.LoaderNodeID,
			depcache.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			resolutions, err := graft.Dep[ports.ResolutionLoader](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[*depcache.Factory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, resolutions, factory, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}
