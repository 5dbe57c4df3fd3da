package inventory

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modup/internal/core/ports"
)

// NodeID is the unique identifier for the module inventory Graft node.
const NodeID graft.ID = "adapter.inventory"

func init() {
	graft.Register(graft.Node[ports.ModuleInventory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleInventory, error) {
			return New(), nil
		},
	})
}
