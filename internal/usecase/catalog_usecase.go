package usecase

import (
	"context"

	"petsfeed/internal/domain/entity"
)

// CatalogUsecase defines the product browsing use cases.
type CatalogUsecase interface {
	// SearchProducts returns products matching the query, optionally narrowed
	// to a category.
	SearchProducts(ctx context.Context, query, category string) ([]entity.Product, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, productID string) (entity.Product, error)

	// GetProductSummary retrieves a product together with its cross-store
	// price range and stock information.
	GetProductSummary(ctx context.Context, productID string) (entity.ProductSummary, error)

	// GetProductOffers returns the store offers for a product sorted by price,
	// cheapest first. When near is set the data source may use it to rank
	// stores by proximity before the price sort is applied.
	GetProductOffers(ctx context.Context, productID string, near *entity.Location) ([]entity.StoreOffer, error)

	// PopularProducts returns up to limit trending products.
	PopularProducts(ctx context.Context, limit int) ([]entity.Product, error)

	// ProductsByCategory returns all products within a category.
	ProductsByCategory(ctx context.Context, category string) ([]entity.Product, error)
}
