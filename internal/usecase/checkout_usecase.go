package usecase

import (
	"context"
	"time"

	"petsfeed/internal/domain/entity"
)

// CheckoutInput carries the customer details posted with every per-store
// order at checkout.
type CheckoutInput struct {
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	PickupTime    *time.Time `json:"pickup_time,omitempty"`
}

// CheckoutResult reports the orders created by a successful checkout, one per
// store represented in the cart.
type CheckoutResult struct {
	Orders []entity.Order `json:"orders"`
}

// CheckoutUsecase turns the current cart into pickup orders.
type CheckoutUsecase interface {
	// PlaceOrder splits the cart into one order per store and submits all of
	// them concurrently. Checkout succeeds only if every submission succeeds;
	// on success the cart is cleared. On any failure the cart is left
	// untouched so the user can retry, and orders already created at other
	// stores are not rolled back.
	PlaceOrder(ctx context.Context, input *CheckoutInput) (*CheckoutResult, error)
}
