package impl

import (
	"context"
	"sort"

	"petsfeed/config"
	"petsfeed/internal/domain/entity"
	domainerrors "petsfeed/internal/domain/errors"
	"petsfeed/internal/domain/repository"
	"petsfeed/internal/errors"
	"petsfeed/internal/usecase"
)

type storeService struct {
	stores repository.StoreRepository
	config *config.Config
}

// NewStoreService creates a new store service instance
func NewStoreService(stores repository.StoreRepository, cfg *config.Config) usecase.StoreUsecase {
	// Zero radii would clamp every query down to nothing.
	if cfg.Nearby == nil {
		cfg.Nearby = &config.NearbyConfig{}
	}
	if cfg.Nearby.DefaultRadiusKm <= 0 {
		cfg.Nearby.DefaultRadiusKm = 10 // as the mobile client does
	}
	if cfg.Nearby.MaxRadiusKm <= 0 {
		cfg.Nearby.MaxRadiusKm = 50
	}

	return &storeService{
		stores: stores,
		config: cfg,
	}
}

// ListStores retrieves all stores.
func (s *storeService) ListStores(ctx context.Context) ([]entity.Store, error) {
	stores, err := s.stores.ListStores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// GetStore retrieves a single store by ID.
func (s *storeService) GetStore(ctx context.Context, storeID string) (entity.Store, error) {
	store, err := s.stores.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return entity.Store{}, domainerrors.ErrStoreNotFound
		}

		return entity.Store{}, errors.Wrap(err, "failed to get store")
	}

	return store, nil
}

// NearbyStores retrieves stores around the origin sorted by distance, closest
// first. The radius falls back to the configured default and is clamped to the
// configured maximum.
func (s *storeService) NearbyStores(ctx context.Context, origin entity.Location, radiusKm float64) ([]entity.Store, error) {
	if radiusKm <= 0 {
		radiusKm = s.config.Nearby.DefaultRadiusKm
	}
	if radiusKm > s.config.Nearby.MaxRadiusKm {
		radiusKm = s.config.Nearby.MaxRadiusKm
	}

	stores, err := s.stores.NearbyStores(ctx, origin, radiusKm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get nearby stores")
	}

	sort.SliceStable(stores, func(i, j int) bool {
		return stores[i].DistanceKm < stores[j].DistanceKm
	})

	return stores, nil
}
