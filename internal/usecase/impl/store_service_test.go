package impl

import (
	"context"
	"testing"

	"petsfeed/config"
	"petsfeed/internal/domain/entity"
	domainerrors "petsfeed/internal/domain/errors"
	"petsfeed/internal/domain/repository"
	mockRepo "petsfeed/internal/mocks/repository"
	"petsfeed/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFixtures holds all test dependencies for store service tests.
type storeFixtures struct {
	service   usecase.StoreUsecase
	storeRepo *mockRepo.MockStoreRepository
}

func createTestStoreService(t *testing.T) storeFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := NewStoreService(storeRepo, &config.Config{
		Nearby: &config.NearbyConfig{
			DefaultRadiusKm: 10,
			MaxRadiusKm:     50,
		},
	})

	return storeFixtures{
		service:   service,
		storeRepo: storeRepo,
	}
}

func TestStoreService_GetStore_NotFound(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		GetStore(ctx, "missing").
		Return(entity.Store{}, repository.ErrStoreNotFound)

	_, err := fx.service.GetStore(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_NearbyStores_DefaultRadius(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	origin := entity.Location{Latitude: 50.45, Longitude: 30.52}

	fx.storeRepo.EXPECT().
		NearbyStores(ctx, origin, 10.0).
		Return([]entity.Store{{ID: "s1", DistanceKm: 1.2}}, nil)

	stores, err := fx.service.NearbyStores(ctx, origin, 0)
	require.NoError(t, err)
	assert.Len(t, stores, 1)
}

func TestStoreService_NearbyStores_ZeroConfigFallsBack(t *testing.T) {
	// A nearby section left at its zero value must not clamp every radius to 0.
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := NewStoreService(storeRepo, &config.Config{
		Nearby: &config.NearbyConfig{},
	})

	ctx := context.Background()
	origin := entity.Location{Latitude: 50.45, Longitude: 30.52}

	storeRepo.EXPECT().
		NearbyStores(ctx, origin, 10.0).
		Return([]entity.Store{{ID: "s1", DistanceKm: 1.2}}, nil)
	storeRepo.EXPECT().
		NearbyStores(ctx, origin, 50.0).
		Return(nil, nil)

	stores, err := service.NearbyStores(ctx, origin, 0)
	require.NoError(t, err)
	assert.Len(t, stores, 1)

	_, err = service.NearbyStores(ctx, origin, 500)
	require.NoError(t, err)
}

func TestStoreService_NearbyStores_ClampsRadius(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	origin := entity.Location{Latitude: 50.45, Longitude: 30.52}

	fx.storeRepo.EXPECT().
		NearbyStores(ctx, origin, 50.0).
		Return(nil, nil)

	_, err := fx.service.NearbyStores(ctx, origin, 500)
	require.NoError(t, err)
}

func TestStoreService_NearbyStores_SortedByDistance(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	origin := entity.Location{Latitude: 50.45, Longitude: 30.52}

	fx.storeRepo.EXPECT().
		NearbyStores(ctx, origin, 5.0).
		Return([]entity.Store{
			{ID: "far", DistanceKm: 4.8},
			{ID: "near", DistanceKm: 0.4},
			{ID: "mid", DistanceKm: 2.1},
		}, nil)

	stores, err := fx.service.NearbyStores(ctx, origin, 5)
	require.NoError(t, err)
	require.Len(t, stores, 3)
	assert.Equal(t, "near", stores[0].ID)
	assert.Equal(t, "mid", stores[1].ID)
	assert.Equal(t, "far", stores[2].ID)
}

func TestStoreService_ListStores(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	expected := []entity.Store{{ID: "s1"}, {ID: "s2"}}
	fx.storeRepo.EXPECT().ListStores(ctx).Return(expected, nil)

	stores, err := fx.service.ListStores(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, stores)
}
