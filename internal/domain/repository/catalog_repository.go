// Package repository defines the data-source contracts for the storefront.
// These interfaces act as a contract between the domain/application layers and
// the infrastructure layer; implementations are either canned fixtures or an
// HTTP client against the upstream backend.
package repository

import (
	"context"

	"petsfeed/internal/domain/entity"
	"petsfeed/internal/errors"
)

// ErrProductNotFound is returned when a product does not exist in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository defines the operations for reading catalog data.
type CatalogRepository interface {
	// SearchProducts returns products matching the query; category narrows the
	// search when non-empty.
	SearchProducts(ctx context.Context, query, category string) ([]entity.Product, error)

	// GetProduct retrieves a single product by ID.
	// Returns ErrProductNotFound if it does not exist.
	GetProduct(ctx context.Context, productID string) (entity.Product, error)

	// GetProductOffers retrieves all store offers for a product, optionally
	// relative to a location so the data source can order by proximity.
	GetProductOffers(ctx context.Context, productID string, near *entity.Location) ([]entity.StoreOffer, error)

	// PopularProducts returns up to limit trending products.
	PopularProducts(ctx context.Context, limit int) ([]entity.Product, error)

	// ProductsByCategory returns all products within a category.
	ProductsByCategory(ctx context.Context, category string) ([]entity.Product, error)
}
