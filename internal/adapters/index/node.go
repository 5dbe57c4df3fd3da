package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modup/internal/core/ports"
)

// NodeID is the unique identifier for the install index Graft node.
const NodeID graft.ID = "adapter.install_index"

func init() {
	graft.Register(graft.Node[ports.InstallIndex]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallIndex, error) {
			return NewStore(), nil
		},
	})
}
