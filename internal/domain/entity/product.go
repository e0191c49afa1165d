package entity

import (
	"github.com/shopspring/decimal"
)

// Availability represents the stock status of a product at a specific store.
type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityLowStock   Availability = "low_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
)

// Purchasable reports whether a product with this availability can still be
// added to an order.
func (a Availability) Purchasable() bool {
	return a == AvailabilityInStock || a == AvailabilityLowStock
}

// Product represents a catalog product shared across all stores.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Brand       string   `json:"brand"`
	Unit        string   `json:"unit"` // e.g. "kg", "piece", "ml"
	Tags        []string `json:"tags"`
}

// StoreOffer is one store's listing of a product: its price, stock status and
// remaining quantity at that store.
type StoreOffer struct {
	ProductID    string          `json:"product_id"`
	StoreID      string          `json:"store_id"`
	StoreName    string          `json:"store_name"`
	Price        decimal.Decimal `json:"price"`
	Availability Availability    `json:"availability"`
	Quantity     int             `json:"quantity"`
}

// PriceRange is the spread of prices for a product across all stores offering it.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// ProductSummary combines a product with aggregate information derived from its
// offers, used by catalog listings.
type ProductSummary struct {
	Product    Product    `json:"product"`
	PriceRange PriceRange `json:"price_range"`
	InStock    bool       `json:"in_stock"`
	StoreCount int        `json:"store_count"`
}
