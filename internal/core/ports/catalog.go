package ports

import (
	"context"

	"go.trai.ch/packsmith/internal/core/domain"
)

// Catalog is the remote asset catalog. Each call is a single attempt; retrying is the caller's job.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type Catalog interface {
	// ResolveFile looks up the file name and download URL of an asset.
	ResolveFile(ctx context.Context, ref domain.AssetRef) (domain.RemoteFile, error)

	// Download fetches the full body at url.
	Download(ctx context.Context, url string) ([]byte, error)
}
