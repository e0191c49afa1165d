package fixture

import (
	"context"
	"sort"
	"sync"
	"time"

	"petsfeed/config"
	"petsfeed/internal/domain/entity"
	"petsfeed/internal/domain/repository"

	"github.com/google/uuid"
)

type orderRepository struct {
	delay time.Duration

	mu     sync.RWMutex
	orders map[string]entity.Order
}

// NewOrderRepository creates a fixture-backed order data source seeded with a
// small order history.
func NewOrderRepository(cfg *config.Config) repository.OrderRepository {
	r := &orderRepository{
		delay:  cfg.DataSource.FixtureDelay,
		orders: make(map[string]entity.Order),
	}

	for _, order := range seedOrders() {
		r.orders[order.ID] = order
	}

	return r
}

func (r *orderRepository) CreateOrder(ctx context.Context, req repository.CreateOrderRequest) (entity.Order, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return entity.Order{}, err
	}

	var storeName string
	for _, s := range fixtureStores {
		if s.ID == req.StoreID {
			storeName = s.Name

			break
		}
	}
	if storeName == "" {
		return entity.Order{}, repository.ErrStoreNotFound
	}

	items := make([]entity.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	now := time.Now()
	order := entity.Order{
		ID:          uuid.NewString(),
		StoreID:     req.StoreID,
		StoreName:   storeName,
		Status:      entity.OrderStatusPending,
		Items:       items,
		TotalAmount: req.TotalAmount,
		PickupTime:  req.PickupTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	r.orders[order.ID] = order
	r.mu.Unlock()

	return order, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID string) (entity.Order, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return entity.Order{}, err
	}

	r.mu.RLock()
	order, ok := r.orders[orderID]
	r.mu.RUnlock()

	if !ok {
		return entity.Order{}, repository.ErrOrderNotFound
	}

	return order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, status *entity.OrderStatus) ([]entity.Order, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	return r.filter(func(o entity.Order) bool {
		return status == nil || o.Status == *status
	}), nil
}

func (r *orderRepository) ActiveOrders(ctx context.Context) ([]entity.Order, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	return r.filter(func(o entity.Order) bool { return o.Status.Active() }), nil
}

func (r *orderRepository) OrderHistory(ctx context.Context) ([]entity.Order, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	return r.filter(func(o entity.Order) bool { return !o.Status.Active() }), nil
}

func (r *orderRepository) CancelOrder(ctx context.Context, orderID string) (entity.Order, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return entity.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return entity.Order{}, repository.ErrOrderNotFound
	}

	order.Status = entity.OrderStatusCancelled
	order.UpdatedAt = time.Now()
	r.orders[orderID] = order

	return order, nil
}

// filter returns matching orders, newest first.
func (r *orderRepository) filter(keep func(entity.Order) bool) []entity.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []entity.Order
	for _, order := range r.orders {
		if keep(order) {
			result = append(result, order)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result
}

func seedOrders() []entity.Order {
	now := time.Now()
	pickup := now.Add(2 * time.Hour)

	return []entity.Order{
		{
			ID:        "order-1",
			StoreID:   "store-1",
			StoreName: "ZooMax",
			Status:    entity.OrderStatusReady,
			Items: []entity.OrderItem{
				{ProductID: "product-2", Quantity: 2, Price: price("189.99")},
			},
			TotalAmount: price("379.98"),
			PickupTime:  &pickup,
			CreatedAt:   now.Add(-3 * time.Hour),
			UpdatedAt:   now.Add(-1 * time.Hour),
		},
		{
			ID:        "order-2",
			StoreID:   "store-1",
			StoreName: "ZooMax",
			Status:    entity.OrderStatusReserved,
			Items: []entity.OrderItem{
				{ProductID: "product-1", Quantity: 1, Price: price("1299.99")},
				{ProductID: "product-3", Quantity: 1, Price: price("89.99")},
			},
			TotalAmount: price("1389.98"),
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-20 * time.Hour),
		},
		{
			ID:        "order-3",
			StoreID:   "store-3",
			StoreName: "Kormoland",
			Status:    entity.OrderStatusCompleted,
			Items: []entity.OrderItem{
				{ProductID: "product-5", Quantity: 3, Price: price("145.99")},
			},
			TotalAmount: price("437.97"),
			CreatedAt:   now.Add(-7 * 24 * time.Hour),
			UpdatedAt:   now.Add(-6 * 24 * time.Hour),
		},
	}
}
