package usecase

import (
	"context"

	"petsfeed/internal/domain/entity"
)

// OrderUsecase defines the order tracking use cases. Order creation happens
// through CheckoutUsecase, never directly.
type OrderUsecase interface {
	// GetOrder retrieves a single order.
	GetOrder(ctx context.Context, orderID string) (entity.Order, error)

	// ListOrders retrieves the user's orders. A non-empty status narrows the
	// result and must be a known order status.
	ListOrders(ctx context.Context, status string) ([]entity.Order, error)

	// ActiveOrders retrieves orders awaiting pickup (pending, reserved, ready).
	ActiveOrders(ctx context.Context) ([]entity.Order, error)

	// OrderHistory retrieves completed and cancelled orders.
	OrderHistory(ctx context.Context) ([]entity.Order, error)

	// CancelOrder cancels an order that has not yet been prepared for pickup.
	CancelOrder(ctx context.Context, orderID string) (entity.Order, error)
}
