package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the cache index Graft node.
const NodeID graft.ID = "adapter.cache_index"

func init() {
	graft.Register(graft.Node[ports.CacheIndex]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheIndex, error) {
			store, err := NewStore()
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
