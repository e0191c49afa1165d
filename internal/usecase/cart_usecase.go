// Package usecase defines the application-level interfaces and their
// input/output types. Implementations live in usecase/impl.
package usecase

import (
	"petsfeed/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartUsecase is the authoritative, in-memory shopping cart for the current
// session. All operations are synchronous and free of I/O; mutations are
// atomic from the caller's perspective.
//
// At most one line exists per (productID, storeID) pair: adding the same
// product from the same store again merges into the existing line.
type CartUsecase interface {
	// AddItem adds quantity units of the product as offered by one store,
	// snapshotting product and offer fields at this instant. If a line for the
	// same (product, store) pair exists, its quantity is increased instead and
	// the original snapshot is kept. Quantity must be positive.
	AddItem(product entity.Product, offer entity.StoreOffer, quantity int) (entity.CartItem, error)

	// RemoveItem removes the line with the given ID. Removing a nonexistent
	// line is a no-op.
	RemoveItem(itemID string)

	// UpdateQuantity replaces the quantity of the matching line. A quantity of
	// zero or less removes the line; an unknown ID is a no-op.
	UpdateQuantity(itemID string, quantity int)

	// Clear empties the cart unconditionally.
	Clear()

	// Items returns a copy of all cart lines in insertion order.
	Items() []entity.CartItem

	// TotalItems returns the sum of quantities across all lines.
	TotalItems() int

	// TotalPrice returns the sum of price x quantity across all lines.
	// No rounding is applied; callers format for display.
	TotalPrice() decimal.Decimal

	// GroupByStore returns the cart lines grouped per store, preserving the
	// first-insertion order of stores and the insertion order of lines within
	// each store. Used for cart display and for order splitting at checkout.
	GroupByStore() []entity.StoreGroup

	// Subscribe registers a callback invoked after every cart mutation and
	// returns a function that cancels the subscription. The presentation layer
	// uses this to re-render on change.
	Subscribe(fn func()) (unsubscribe func())
}
