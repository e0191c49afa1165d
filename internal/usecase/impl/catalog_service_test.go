package impl

import (
	"context"
	"testing"

	"petsfeed/internal/domain/entity"
	domainerrors "petsfeed/internal/domain/errors"
	"petsfeed/internal/domain/repository"
	mockRepo "petsfeed/internal/mocks/repository"
	"petsfeed/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogFixtures holds all test dependencies for catalog service tests.
type catalogFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T) catalogFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(catalogRepo)

	return catalogFixtures{
		service:     service,
		catalogRepo: catalogRepo,
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		GetProduct(ctx, "missing").
		Return(entity.Product{}, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_GetProduct_RepoFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		GetProduct(ctx, "p1").
		Return(entity.Product{}, errors.New("connection refused"))

	_, err := fx.service.GetProduct(ctx, "p1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_GetProductSummary(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	product := testProduct("p1")
	offers := []entity.StoreOffer{
		testOffer("p1", "s1", "120.00"),
		testOffer("p1", "s2", "99.99"),
		testOffer("p1", "s3", "150.00"),
	}
	offers[2].Availability = entity.AvailabilityOutOfStock

	fx.catalogRepo.EXPECT().GetProduct(ctx, "p1").Return(product, nil)
	fx.catalogRepo.EXPECT().GetProductOffers(ctx, "p1", (*entity.Location)(nil)).Return(offers, nil)

	summary, err := fx.service.GetProductSummary(ctx, "p1")
	require.NoError(t, err)

	assert.Equal(t, product, summary.Product)
	assert.Equal(t, 3, summary.StoreCount)
	assert.True(t, summary.InStock)
	assert.True(t, summary.PriceRange.Min.Equal(decimal.RequireFromString("99.99")))
	assert.True(t, summary.PriceRange.Max.Equal(decimal.RequireFromString("150.00")))
}

func TestCatalogService_GetProductSummary_AllOutOfStock(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	product := testProduct("p1")
	offer := testOffer("p1", "s1", "50.00")
	offer.Availability = entity.AvailabilityOutOfStock

	fx.catalogRepo.EXPECT().GetProduct(ctx, "p1").Return(product, nil)
	fx.catalogRepo.EXPECT().GetProductOffers(ctx, "p1", (*entity.Location)(nil)).
		Return([]entity.StoreOffer{offer}, nil)

	summary, err := fx.service.GetProductSummary(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, summary.InStock)
	assert.Equal(t, 1, summary.StoreCount)
}

func TestCatalogService_GetProductOffers_SortedByPrice(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	offers := []entity.StoreOffer{
		testOffer("p1", "s1", "120.00"),
		testOffer("p1", "s2", "99.99"),
		testOffer("p1", "s3", "105.50"),
	}

	fx.catalogRepo.EXPECT().GetProductOffers(ctx, "p1", (*entity.Location)(nil)).Return(offers, nil)

	sorted, err := fx.service.GetProductOffers(ctx, "p1", nil)
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, "s2", sorted[0].StoreID)
	assert.Equal(t, "s3", sorted[1].StoreID)
	assert.Equal(t, "s1", sorted[2].StoreID)
}

func TestCatalogService_GetProductOffers_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().GetProductOffers(ctx, "missing", (*entity.Location)(nil)).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProductOffers(ctx, "missing", nil)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_PopularProducts_DefaultLimit(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		PopularProducts(ctx, 10).
		Return([]entity.Product{testProduct("p1")}, nil)

	products, err := fx.service.PopularProducts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogService_SearchProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	expected := []entity.Product{testProduct("p1"), testProduct("p2")}
	fx.catalogRepo.EXPECT().
		SearchProducts(ctx, "royal", "food").
		Return(expected, nil)

	products, err := fx.service.SearchProducts(ctx, "royal", "food")
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}
