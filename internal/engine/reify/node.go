package reify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reify/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reify/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reify/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reify/internal/adapters/tap"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reify/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reify/internal/core/ports"
)

const (
	// ReifierNodeID is the unique identifier for the reifier Graft node.
	ReifierNodeID graft.ID = "engine.reifier"
	// OrchestratorNodeID is the unique identifier for the orchestrator Graft node.
	OrchestratorNodeID graft.ID = "engine.orchestrator"
)

func init() {
	graft.Register(graft.Node[*Reifier]{
		ID:        ReifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.DigesterNodeID,
			fs.ResolverNodeID,
			shell.NodeID,
		},
		Run: func(ctx context.Context) (*Reifier, error) {
			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			return NewReifier(digester, resolver, executor), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestRunner]{
		ID:        OrchestratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ReifierNodeID,
			config.NodeID,
			tap.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.ManifestRunner, error) {
			reifier, err := graft.Dep[*Reifier](ctx)
			if err != nil {
				return nil, err
			}

			codec, err := graft.Dep[ports.ManifestCodec](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewOrchestrator(reifier, codec, reporter, tracer), nil
		},
	})
}
