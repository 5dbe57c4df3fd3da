package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modup/internal/adapters/index"
	"go.trai.ch/modup/internal/adapters/inventory"
	"go.trai.ch/modup/internal/adapters/logger"
	"go.trai.ch/modup/internal/adapters/registry"
	"go.trai.ch/modup/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID, index.NodeID, inventory.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			reg, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			idx, err := graft.Dep[ports.InstallIndex](ctx)
			if err != nil {
				return nil, err
			}
			inv, err := graft.Dep[ports.ModuleInventory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(reg, idx, inv, log), nil
		},
	})
}
