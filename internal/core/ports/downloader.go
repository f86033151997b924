package ports

import (
	"context"

	"go.trai.ch/packsmith/internal/core/domain"
)

// Downloader writes remote content to disk exactly once.
//
//go:generate go run go.uber.org/mock/mockgen -source=downloader.go -destination=mocks/mock_downloader.go -package=mocks
type Downloader interface {
	// FetchAsset resolves ref through the catalog and writes it into dir under its catalog file name.
	// The result carries the written (or already present) path.
	FetchAsset(ctx context.Context, ref domain.AssetRef, dir string) (domain.FetchResult, error)

	// FetchURL writes the body at url to dest.
	FetchURL(ctx context.Context, url, dest string) error
}
