package entity

import (
	"github.com/shopspring/decimal"
)

// CartItem is one line in the shopping cart: a specific product sourced from a
// specific store. All product and store fields are snapshots taken when the
// line was created; later catalog changes do not alter an existing line.
type CartItem struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductBrand string          `json:"product_brand"`
	ProductImage string          `json:"product_image"`
	StoreID      string          `json:"store_id"`
	StoreName    string          `json:"store_name"`
	Price        decimal.Decimal `json:"price"` // unit price at add-time
	Quantity     int             `json:"quantity"`
	Availability Availability    `json:"availability"`
}

// LineTotal returns Price multiplied by Quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// StoreGroup is the subset of cart lines belonging to one store. It is the
// unit of order creation at checkout.
type StoreGroup struct {
	StoreID   string     `json:"store_id"`
	StoreName string     `json:"store_name"`
	Items     []CartItem `json:"items"`
}

// Subtotal returns the sum of line totals within the group.
func (g StoreGroup) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range g.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}
