package resolution

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/core/ports"
)

const (
	// AdapterNodeID is the unique identifier for the resolution adapter Graft node.
	AdapterNodeID graft.ID = "adapter.resolution"
	// LoaderNodeID is the unique identifier for the resolution loader Graft node.
	LoaderNodeID graft.ID = "adapter.resolution.loader"
	// FetcherNodeID is the unique identifier for the source fetcher Graft node.
	FetcherNodeID graft.ID = "adapter.resolution.fetcher"
)

func init() {
	graft.Register(graft.Node[*Adapter]{
		ID:        AdapterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Adapter, error) {
			return NewAdapter(), nil
		},
	})

	// The loader and the fetcher share one adapter so fetches see the loaded snapshot.
	graft.Register(graft.Node[ports.ResolutionLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AdapterNodeID},
		Run: func(ctx context.Context) (ports.ResolutionLoader, error) {
			adapter, err := graft.Dep[*Adapter](ctx)
			if err != nil {
				return nil, err
			}
			return adapter, nil
		},
	})

	graft.Register(graft.Node[ports.SourceFetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AdapterNodeID},
		Run: func(ctx context.Context) (ports.SourceFetcher, error) {
			adapter, err := graft.Dep[*Adapter](ctx)
			if err != nil {
				return nil, err
			}
			return adapter, nil
		},
	})
}
