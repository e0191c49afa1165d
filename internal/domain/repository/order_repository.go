package repository

import (
	"context"
	"time"

	"petsfeed/internal/domain/entity"
	"petsfeed/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderItemRequest is one line of an order creation request.
type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest is the payload for reserving products at a single store.
// Checkout produces one request per store group of the cart.
type CreateOrderRequest struct {
	StoreID     string             `json:"store_id"`
	Items       []OrderItemRequest `json:"items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`

	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	PickupTime    *time.Time `json:"pickup_time,omitempty"`
}

// OrderRepository defines the operations for creating and reading pickup orders.
type OrderRepository interface {
	// CreateOrder reserves the requested products at a store and returns the
	// created order.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (entity.Order, error)

	// GetOrder retrieves a single order by ID.
	// Returns ErrOrderNotFound if it does not exist.
	GetOrder(ctx context.Context, orderID string) (entity.Order, error)

	// ListOrders retrieves the user's orders, optionally filtered by status.
	ListOrders(ctx context.Context, status *entity.OrderStatus) ([]entity.Order, error)

	// ActiveOrders retrieves orders that are pending, reserved or ready.
	ActiveOrders(ctx context.Context) ([]entity.Order, error)

	// OrderHistory retrieves completed and cancelled orders.
	OrderHistory(ctx context.Context) ([]entity.Order, error)

	// CancelOrder cancels an order and returns its updated state.
	// Returns ErrOrderNotFound if it does not exist.
	CancelOrder(ctx context.Context, orderID string) (entity.Order, error)
}
