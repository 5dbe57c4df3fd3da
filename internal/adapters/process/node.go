package process

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modup/internal/adapters/logger"
	"go.trai.ch/modup/internal/core/ports"
)

// NodeID is the unique identifier for the unloader Graft node.
const NodeID graft.ID = "adapter.unloader"

func init() {
	graft.Register(graft.Node[ports.Unloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Unloader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
