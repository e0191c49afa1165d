package impl

import (
	"context"
	"testing"

	"petsfeed/internal/domain/entity"
	domainerrors "petsfeed/internal/domain/errors"
	"petsfeed/internal/domain/repository"
	mockRepo "petsfeed/internal/mocks/repository"
	"petsfeed/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderFixtures holds all test dependencies for order service tests.
type orderFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(orderRepo)

	return orderFixtures{
		service:   service,
		orderRepo: orderRepo,
	}
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		GetOrder(ctx, "missing").
		Return(entity.Order{}, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders_StatusFilter(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	ready := entity.OrderStatusReady
	fx.orderRepo.EXPECT().
		ListOrders(ctx, &ready).
		Return([]entity.Order{{ID: "order-1", Status: ready}}, nil)

	orders, err := fx.service.ListOrders(ctx, "ready")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_ListOrders_NoFilter(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		ListOrders(ctx, (*entity.OrderStatus)(nil)).
		Return([]entity.Order{{ID: "order-1"}, {ID: "order-2"}}, nil)

	orders, err := fx.service.ListOrders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderService_ListOrders_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.ListOrders(context.Background(), "shipped")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ORDER_STATUS", appErr.ErrorCode())
}

func TestOrderService_CancelOrder_Cancellable(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		GetOrder(ctx, "order-1").
		Return(entity.Order{ID: "order-1", Status: entity.OrderStatusReserved}, nil)

	fx.orderRepo.EXPECT().
		CancelOrder(ctx, "order-1").
		Return(entity.Order{ID: "order-1", Status: entity.OrderStatusCancelled}, nil)

	order, err := fx.service.CancelOrder(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_CancelOrder_NotCancellable(t *testing.T) {
	tests := []struct {
		name   string
		status entity.OrderStatus
	}{
		{name: "ready for pickup", status: entity.OrderStatusReady},
		{name: "already completed", status: entity.OrderStatusCompleted},
		{name: "already cancelled", status: entity.OrderStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			fx.orderRepo.EXPECT().
				GetOrder(ctx, "order-1").
				Return(entity.Order{ID: "order-1", Status: tt.status}, nil)

			_, err := fx.service.CancelOrder(ctx, "order-1")
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "ORDER_NOT_CANCELLABLE", appErr.ErrorCode())
		})
	}
}

func TestOrderService_ActiveAndHistory(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		ActiveOrders(ctx).
		Return([]entity.Order{{ID: "order-1", Status: entity.OrderStatusPending}}, nil)
	fx.orderRepo.EXPECT().
		OrderHistory(ctx).
		Return([]entity.Order{{ID: "order-2", Status: entity.OrderStatusCompleted}}, nil)

	active, err := fx.service.ActiveOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	history, err := fx.service.OrderHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
