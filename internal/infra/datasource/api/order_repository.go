package api

import (
	"context"
	"net/url"

	"petsfeed/internal/domain/entity"
	"petsfeed/internal/domain/repository"
)

type orderRepository struct {
	client *Client
}

// NewOrderRepository creates an order data source backed by the upstream API.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) CreateOrder(ctx context.Context, req repository.CreateOrderRequest) (entity.Order, error) {
	var dto orderDTO
	if err := r.client.post(ctx, "/orders", toCreateOrderDTO(req), &dto); err != nil {
		if isNotFound(err) {
			return entity.Order{}, repository.ErrStoreNotFound
		}

		return entity.Order{}, err
	}

	return dto.toEntity(), nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID string) (entity.Order, error) {
	var dto orderDTO
	if err := r.client.get(ctx, "/orders/"+url.PathEscape(orderID), nil, &dto); err != nil {
		if isNotFound(err) {
			return entity.Order{}, repository.ErrOrderNotFound
		}

		return entity.Order{}, err
	}

	return dto.toEntity(), nil
}

func (r *orderRepository) ListOrders(ctx context.Context, status *entity.OrderStatus) ([]entity.Order, error) {
	params := url.Values{}
	if status != nil {
		params.Set("status", string(*status))
	}

	return r.listOrders(ctx, "/orders", params)
}

func (r *orderRepository) ActiveOrders(ctx context.Context) ([]entity.Order, error) {
	return r.listOrders(ctx, "/orders/active", nil)
}

func (r *orderRepository) OrderHistory(ctx context.Context) ([]entity.Order, error) {
	return r.listOrders(ctx, "/orders/history", nil)
}

func (r *orderRepository) CancelOrder(ctx context.Context, orderID string) (entity.Order, error) {
	var dto orderDTO
	if err := r.client.post(ctx, "/orders/"+url.PathEscape(orderID)+"/cancel", nil, &dto); err != nil {
		if isNotFound(err) {
			return entity.Order{}, repository.ErrOrderNotFound
		}

		return entity.Order{}, err
	}

	return dto.toEntity(), nil
}

func (r *orderRepository) listOrders(ctx context.Context, path string, params url.Values) ([]entity.Order, error) {
	var dtos []orderDTO
	if err := r.client.get(ctx, path, params, &dtos); err != nil {
		return nil, err
	}

	orders := make([]entity.Order, len(dtos))
	for i, dto := range dtos {
		orders[i] = dto.toEntity()
	}

	return orders, nil
}
