package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a pickup order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusReserved  OrderStatus = "reserved"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusReserved, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Active reports whether the order is still in progress.
func (s OrderStatus) Active() bool {
	switch s {
	case OrderStatusPending, OrderStatusReserved, OrderStatusReady:
		return true
	default:
		return false
	}
}

// Cancellable reports whether the order can still be cancelled by the
// customer. Orders that are already prepared for pickup cannot.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusReserved
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // unit price at order time
}

// Order is a pickup order created against a single store.
type Order struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"store_id"`
	StoreName   string          `json:"store_name,omitempty"`
	Status      OrderStatus     `json:"status"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PickupTime  *time.Time      `json:"pickup_time,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
