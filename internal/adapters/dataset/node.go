package dataset

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/atlas/internal/adapters/logger"
	"go.trai.ch/atlas/internal/core/ports"
)

// NodeID is the graft id of the dataset loader.
const NodeID graft.ID = "adapter.dataset_loader"

func init() {
	graft.Register(graft.Node[ports.DatasetLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DatasetLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
