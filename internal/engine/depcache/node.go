package depcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/adapters/archive"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/adapters/cas"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/adapters/fs"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/adapters/resolution" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/adapters/telemetry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the engine factory Graft node.
const NodeID graft.ID = "engine.depcache"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			archive.NodeID,
			fs.LocatorNodeID,
			resolution.FetcherNodeID,
			cas.NodeID,
			fs.HasherNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			inspector, err := graft.Dep[ports.ArchiveInspector](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.SourceLocator](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.SourceFetcher](ctx)
			if err != nil {
				return nil, err
			}

			index, err := graft.Dep[ports.CacheIndex](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(inspector, locator, fetcher, index, hasher, tracer, log), nil
		},
	})
}
