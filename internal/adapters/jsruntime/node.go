package jsruntime

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/string16/internal/core/ports"
)

// NodeID is the unique identifier for the JavaScript evaluator Graft node.
const NodeID graft.ID = "adapter.jsruntime"

func init() {
	graft.Register(graft.Node[ports.Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Evaluator, error) {
			return New(), nil
		},
	})
}
