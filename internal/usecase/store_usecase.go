package usecase

import (
	"context"

	"petsfeed/internal/domain/entity"
)

// StoreUsecase defines the store browsing use cases.
type StoreUsecase interface {
	// ListStores retrieves all stores.
	ListStores(ctx context.Context) ([]entity.Store, error)

	// GetStore retrieves a single store.
	GetStore(ctx context.Context, storeID string) (entity.Store, error)

	// NearbyStores retrieves stores around the origin sorted by distance,
	// closest first. A non-positive radius falls back to the configured
	// default; the radius is clamped to the configured maximum.
	NearbyStores(ctx context.Context, origin entity.Location, radiusKm float64) ([]entity.Store, error)
}
