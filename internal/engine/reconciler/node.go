package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modup/internal/adapters/index"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modup/internal/adapters/installer" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modup/internal/adapters/inventory" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modup/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modup/internal/adapters/process"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modup/internal/adapters/prompt"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modup/internal/adapters/registry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modup/internal/core/ports"
)

// NodeID is the unique identifier for the reconciler Graft node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			inventory.NodeID,
			index.NodeID,
			registry.NodeID,
			installer.NodeID,
			process.NodeID,
			prompt.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Reconciler, error) {
			inv, err := graft.Dep[ports.ModuleInventory](ctx)
			if err != nil {
				return nil, err
			}

			idx, err := graft.Dep[ports.InstallIndex](ctx)
			if err != nil {
				return nil, err
			}

			reg, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}

			inst, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}

			unloader, err := graft.Dep[ports.Unloader](ctx)
			if err != nil {
				return nil, err
			}

			confirmer, err := graft.Dep[ports.Confirmer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(inv, idx, reg, inst, unloader, confirmer, log), nil
		},
	})
}
