package impl

import (
	"context"

	"petsfeed/internal/domain/entity"
	domainerrors "petsfeed/internal/domain/errors"
	"petsfeed/internal/domain/repository"
	"petsfeed/internal/errors"
	"petsfeed/internal/usecase"
)

type orderService struct {
	orders repository.OrderRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(orders repository.OrderRepository) usecase.OrderUsecase {
	return &orderService{orders: orders}
}

// GetOrder retrieves a single order by ID.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (entity.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return entity.Order{}, domainerrors.ErrOrderNotFound
		}

		return entity.Order{}, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// ListOrders retrieves the user's orders, optionally narrowed by status.
func (s *orderService) ListOrders(ctx context.Context, status string) ([]entity.Order, error) {
	var filter *entity.OrderStatus
	if status != "" {
		st := entity.OrderStatus(status)
		if !st.Valid() {
			return nil, domainerrors.ErrInvalidOrderStatus.WithDetails("unknown status: " + status)
		}
		filter = &st
	}

	orders, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ActiveOrders retrieves orders awaiting pickup.
func (s *orderService) ActiveOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orders.ActiveOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active orders")
	}

	return orders, nil
}

// OrderHistory retrieves completed and cancelled orders.
func (s *orderService) OrderHistory(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orders.OrderHistory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order history")
	}

	return orders, nil
}

// CancelOrder cancels an order that is still pending or reserved.
func (s *orderService) CancelOrder(ctx context.Context, orderID string) (entity.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return entity.Order{}, err
	}

	if !order.Status.Cancellable() {
		return entity.Order{}, domainerrors.ErrOrderNotCancellable.WithDetails(
			"order is " + string(order.Status))
	}

	cancelled, err := s.orders.CancelOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return entity.Order{}, domainerrors.ErrOrderNotFound
		}

		return entity.Order{}, errors.Wrap(err, "failed to cancel order")
	}

	return cancelled, nil
}
