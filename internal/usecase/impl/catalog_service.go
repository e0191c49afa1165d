package impl

import (
	"context"
	"sort"

	"petsfeed/internal/domain/entity"
	domainerrors "petsfeed/internal/domain/errors"
	"petsfeed/internal/domain/repository"
	"petsfeed/internal/errors"
	"petsfeed/internal/usecase"
)

const defaultPopularLimit = 10

type catalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalog repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{catalog: catalog}
}

// SearchProducts returns products matching the query and optional category.
func (s *catalogService) SearchProducts(ctx context.Context, query, category string) ([]entity.Product, error) {
	products, err := s.catalog.SearchProducts(ctx, query, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// GetProduct retrieves a single product by ID.
func (s *catalogService) GetProduct(ctx context.Context, productID string) (entity.Product, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return entity.Product{}, domainerrors.ErrProductNotFound
		}

		return entity.Product{}, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// GetProductSummary combines the product with its cross-store price range and
// stock information.
func (s *catalogService) GetProductSummary(ctx context.Context, productID string) (entity.ProductSummary, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return entity.ProductSummary{}, err
	}

	offers, err := s.catalog.GetProductOffers(ctx, productID, nil)
	if err != nil {
		return entity.ProductSummary{}, errors.Wrap(err, "failed to get product offers")
	}

	summary := entity.ProductSummary{
		Product:    product,
		StoreCount: len(offers),
	}

	for i, offer := range offers {
		if i == 0 {
			summary.PriceRange = entity.PriceRange{Min: offer.Price, Max: offer.Price}
		} else {
			if offer.Price.LessThan(summary.PriceRange.Min) {
				summary.PriceRange.Min = offer.Price
			}
			if offer.Price.GreaterThan(summary.PriceRange.Max) {
				summary.PriceRange.Max = offer.Price
			}
		}

		if offer.Availability.Purchasable() {
			summary.InStock = true
		}
	}

	return summary, nil
}

// GetProductOffers returns the store offers for a product, cheapest first.
func (s *catalogService) GetProductOffers(ctx context.Context, productID string, near *entity.Location) ([]entity.StoreOffer, error) {
	offers, err := s.catalog.GetProductOffers(ctx, productID, near)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product offers")
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price.LessThan(offers[j].Price)
	})

	return offers, nil
}

// PopularProducts returns up to limit trending products.
func (s *catalogService) PopularProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}

	products, err := s.catalog.PopularProducts(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get popular products")
	}

	return products, nil
}

// ProductsByCategory returns all products within a category.
func (s *catalogService) ProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	products, err := s.catalog.ProductsByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get products by category")
	}

	return products, nil
}
