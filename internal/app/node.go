package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylo/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/stylo/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/stylo/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/stylo/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/stylo/internal/adapters/scss"      //nolint:depguard // Wired in app layer
	"go.trai.ch/stylo/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/stylo/internal/adapters/snapshot"  //nolint:depguard // Wired in app layer
	"go.trai.ch/stylo/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/stylo/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/stylo/internal/core/ports"
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
			logger.NodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			scss.NodeID,
			shell.NodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
			metrics.ServerNodeID,
			snapshot.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	enumerator, err := graft.Dep[ports.SourceEnumerator](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.ContentHasher](ctx)
	if err != nil {
		return nil, err
	}
	transformer, err := graft.Dep[ports.Transformer](ctx)
	if err != nil {
		return nil, err
	}
	post, err := graft.Dep[ports.PostProcessor](ctx)
	if err != nil {
		return nil, err
	}
	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	recorder, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}
	server, err := graft.Dep[ports.MetricsServer](ctx)
	if err != nil {
		return nil, err
	}
	debug, err := graft.Dep[ports.DebugWriter](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, enumerator, transformer, post, hasher, watchers, tracer, recorder, server, debug), nil
}
