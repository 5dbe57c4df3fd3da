package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modup/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/modup/internal/adapters/index"     //nolint:depguard // Wired in app layer
	"go.trai.ch/modup/internal/adapters/installer" //nolint:depguard // Wired in app layer
	"go.trai.ch/modup/internal/adapters/inventory" //nolint:depguard // Wired in app layer
	"go.trai.ch/modup/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/modup/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/modup/internal/adapters/registry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/modup/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/modup/internal/core/ports"
	"go.trai.ch/modup/internal/engine/reconciler"
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
			inventory.NodeID,
			index.NodeID,
			installer.NodeID,
			prompt.NodeID,
			registry.CacheNodeID,
			report.NodeID,
			logger.NodeID,
			reconciler.NodeID,
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

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	inv, err := graft.Dep[ports.ModuleInventory](ctx)
	if err != nil {
		return nil, err
	}

	idx, err := graft.Dep[ports.InstallIndex](ctx)
	if err != nil {
		return nil, err
	}

	inst, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}

	confirmer, err := graft.Dep[ports.Confirmer](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.RegistryCache](ctx)
	if err != nil {
		return nil, err
	}

	printer, err := graft.Dep[ports.ReportPrinter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	rec, err := graft.Dep[*reconciler.Reconciler](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, inv, idx, inst, confirmer, cache, printer, log, rec), nil
}
