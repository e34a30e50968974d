package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/string16/internal/adapters/charset"   //nolint:depguard // Wired in app layer
	"go.trai.ch/string16/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/string16/internal/adapters/jsruntime" //nolint:depguard // Wired in app layer
	"go.trai.ch/string16/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/string16/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/string16/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what main needs: the App and the logger used to report
// its errors.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			charset.NodeID,
			jsruntime.NodeID,
			telemetry.TracerNodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	decoder, err := graft.Dep[ports.Decoder](ctx)
	if err != nil {
		return nil, err
	}

	evaluator, err := graft.Dep[ports.Evaluator](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, decoder, evaluator, tracer), nil
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

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
