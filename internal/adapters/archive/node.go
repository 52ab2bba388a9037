package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the archive inspector Graft node.
const NodeID graft.ID = "adapter.archive_inspector"

func init() {
	graft.Register(graft.Node[ports.ArchiveInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveInspector, error) {
			return NewInspector(), nil
		},
	})
}
