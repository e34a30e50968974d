package charset

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/string16/internal/core/ports"
)

// NodeID is the unique identifier for the charset decoder Graft node.
const NodeID graft.ID = "adapter.charset"

func init() {
	graft.Register(graft.Node[ports.Decoder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Decoder, error) {
			return NewDecoder(), nil
		},
	})
}
