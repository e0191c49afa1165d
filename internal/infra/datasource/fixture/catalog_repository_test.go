package fixture

import (
	"context"
	"testing"
	"time"

	"petsfeed/config"
	"petsfeed/internal/domain/entity"
	"petsfeed/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		DataSource: &config.DataSourceConfig{
			Provider: config.DataSourceFixture,
		},
	}
}

func TestCatalogRepository_SearchProducts(t *testing.T) {
	repo := NewCatalogRepository(testConfig())
	ctx := context.Background()

	t.Run("by name", func(t *testing.T) {
		products, err := repo.SearchProducts(ctx, "royal", "")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "product-1", products[0].ID)
	})

	t.Run("by tag", func(t *testing.T) {
		products, err := repo.SearchProducts(ctx, "wet food", "")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "product-7", products[0].ID)
	})

	t.Run("category narrows the match", func(t *testing.T) {
		products, err := repo.SearchProducts(ctx, "dry food", "Cat food")
		require.NoError(t, err)
		for _, p := range products {
			assert.Equal(t, "Cat food", p.Category)
		}
		assert.NotEmpty(t, products)
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		products, err := repo.SearchProducts(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, products, len(fixtureProducts))
	})

	t.Run("no match", func(t *testing.T) {
		products, err := repo.SearchProducts(ctx, "aquarium", "")
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestCatalogRepository_GetProduct(t *testing.T) {
	repo := NewCatalogRepository(testConfig())
	ctx := context.Background()

	product, err := repo.GetProduct(ctx, "product-2")
	require.NoError(t, err)
	assert.Equal(t, "Whiskas with Chicken", product.Name)

	_, err = repo.GetProduct(ctx, "product-999")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalogRepository_GetProductOffers(t *testing.T) {
	repo := NewCatalogRepository(testConfig())
	ctx := context.Background()

	offers, err := repo.GetProductOffers(ctx, "product-1", nil)
	require.NoError(t, err)
	assert.Len(t, offers, 3)

	_, err = repo.GetProductOffers(ctx, "product-999", nil)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalogRepository_GetProductOffers_RankedByProximity(t *testing.T) {
	repo := NewCatalogRepository(testConfig())
	ctx := context.Background()

	// Next to Kormoland (store-3); ZooMax and Pet Shop are farther north.
	near := &entity.Location{Latitude: 50.4441, Longitude: 30.5174}

	offers, err := repo.GetProductOffers(ctx, "product-1", near)
	require.NoError(t, err)
	require.Len(t, offers, 3)
	assert.Equal(t, "store-3", offers[0].StoreID)
}

func TestCatalogRepository_PopularProducts(t *testing.T) {
	repo := NewCatalogRepository(testConfig())
	ctx := context.Background()

	products, err := repo.PopularProducts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Products tagged as popular lead the list.
	assert.Equal(t, "product-2", products[0].ID)
	assert.Equal(t, "product-7", products[1].ID)

	all, err := repo.PopularProducts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, len(fixtureProducts))
}

func TestCatalogRepository_ProductsByCategory(t *testing.T) {
	repo := NewCatalogRepository(testConfig())
	ctx := context.Background()

	products, err := repo.ProductsByCategory(ctx, "cat FOOD")
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestCatalogRepository_SimulatedLatencyHonorsContext(t *testing.T) {
	cfg := testConfig()
	cfg.DataSource.FixtureDelay = time.Minute
	repo := NewCatalogRepository(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := repo.GetProduct(ctx, "product-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
