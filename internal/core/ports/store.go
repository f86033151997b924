package ports

import "go.trai.ch/packsmith/internal/core/domain"

// ResolutionStore caches catalog lookups between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResolutionStore interface {
	// Get returns the cached resolution for ref.
	// Returns nil, nil if not found.
	Get(ref domain.AssetRef) (*domain.RemoteFile, error)

	// Put stores the resolution for ref.
	Put(ref domain.AssetRef, file domain.RemoteFile) error
}
