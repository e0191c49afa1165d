package repository

import (
	"context"

	"petsfeed/internal/domain/entity"
	"petsfeed/internal/errors"
)

// ErrStoreNotFound is returned when a store does not exist.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the operations for reading store data.
type StoreRepository interface {
	// ListStores retrieves all known stores.
	ListStores(ctx context.Context) ([]entity.Store, error)

	// GetStore retrieves a single store by ID.
	// Returns ErrStoreNotFound if it does not exist.
	GetStore(ctx context.Context, storeID string) (entity.Store, error)

	// NearbyStores retrieves stores within radiusKm of the origin, each with
	// DistanceKm filled in.
	NearbyStores(ctx context.Context, origin entity.Location, radiusKm float64) ([]entity.Store, error)
}
