package fixture

import (
	"context"
	"slices"
	"time"

	"petsfeed/config"
	"petsfeed/internal/domain/entity"
	"petsfeed/internal/domain/repository"

	"github.com/paulmach/orb/geo"
)

type storeRepository struct {
	delay time.Duration
}

// NewStoreRepository creates a fixture-backed store data source.
func NewStoreRepository(cfg *config.Config) repository.StoreRepository {
	return &storeRepository{delay: cfg.DataSource.FixtureDelay}
}

func (r *storeRepository) ListStores(ctx context.Context) ([]entity.Store, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	return slices.Clone(fixtureStores), nil
}

func (r *storeRepository) GetStore(ctx context.Context, storeID string) (entity.Store, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return entity.Store{}, err
	}

	for _, s := range fixtureStores {
		if s.ID == storeID {
			return s, nil
		}
	}

	return entity.Store{}, repository.ErrStoreNotFound
}

func (r *storeRepository) NearbyStores(ctx context.Context, origin entity.Location, radiusKm float64) ([]entity.Store, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	from := locationPoint(origin)

	var result []entity.Store
	for _, s := range fixtureStores {
		distanceKm := geo.Distance(from, locationPoint(s.Location())) / 1000
		if distanceKm > radiusKm {
			continue
		}
		s.DistanceKm = distanceKm
		result = append(result, s)
	}

	return result, nil
}
