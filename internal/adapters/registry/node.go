package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modup/internal/adapters/logger"
	"go.trai.ch/modup/internal/core/ports"
)

const (
	// ClientNodeID is the unique identifier for the shared registry client Graft node.
	ClientNodeID graft.ID = "adapter.registry.client"

	// NodeID is the unique identifier for the registry Graft node.
	NodeID graft.ID = "adapter.registry"

	// CacheNodeID is the unique identifier for the registry cache Graft node.
	CacheNodeID graft.ID = "adapter.registry.cache"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        ClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Client, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(log), nil
		},
	})

	graft.Register(graft.Node[ports.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.Registry, error) {
			return graft.Dep[*Client](ctx)
		},
	})

	graft.Register(graft.Node[ports.RegistryCache]{
		ID:        CacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.RegistryCache, error) {
			return graft.Dep[*Client](ctx)
		},
	})
}
