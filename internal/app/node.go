package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reify/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/reify/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/reify/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/reify/internal/engine/reify"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.FinderNodeID,
			fs.StoreNodeID,
			reify.OrchestratorNodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
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

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	finder, err := graft.Dep[ports.ManifestFinder](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.ManifestRunner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(finder, store, runner, log, watchers), nil
}
