package tap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/reify/internal/ui/output"
)

// NodeID is the unique identifier for the progress reporter Graft node.
const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Reporter, error) {
			return NewReporter(output.StdoutFrom(ctx)), nil
		},
	})
}
