package fixture

import (
	"context"
	"testing"

	"petsfeed/internal/domain/entity"
	"petsfeed/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRepository_ListStores(t *testing.T) {
	repo := NewStoreRepository(testConfig())

	stores, err := repo.ListStores(context.Background())
	require.NoError(t, err)
	assert.Len(t, stores, len(fixtureStores))
}

func TestStoreRepository_GetStore(t *testing.T) {
	repo := NewStoreRepository(testConfig())
	ctx := context.Background()

	store, err := repo.GetStore(ctx, "store-3")
	require.NoError(t, err)
	assert.Equal(t, "Kormoland", store.Name)

	_, err = repo.GetStore(ctx, "store-999")
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestStoreRepository_NearbyStores(t *testing.T) {
	repo := NewStoreRepository(testConfig())
	ctx := context.Background()

	// City center; all fixture stores sit within a few kilometers.
	origin := entity.Location{Latitude: 50.4495, Longitude: 30.5205}

	stores, err := repo.NearbyStores(ctx, origin, 10)
	require.NoError(t, err)
	assert.Len(t, stores, len(fixtureStores))
	for _, s := range stores {
		assert.Greater(t, s.DistanceKm, 0.0, "distance must be filled for %s", s.ID)
		assert.LessOrEqual(t, s.DistanceKm, 10.0)
	}
}

func TestStoreRepository_NearbyStores_RadiusFilters(t *testing.T) {
	repo := NewStoreRepository(testConfig())
	ctx := context.Background()

	// Far outside the city; nothing within a kilometer.
	origin := entity.Location{Latitude: 49.0, Longitude: 31.0}

	stores, err := repo.NearbyStores(ctx, origin, 1)
	require.NoError(t, err)
	assert.Empty(t, stores)
}
