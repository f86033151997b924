package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packsmith/internal/adapters/settings"
	"go.trai.ch/packsmith/internal/core/ports"
)

// NodeID is the unique identifier for the catalog client Graft node.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.Catalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Catalog, error) {
			s, err := graft.Dep[settings.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(s.CatalogURL, s.APIKey, s.RequestTimeout), nil
		},
	})
}
