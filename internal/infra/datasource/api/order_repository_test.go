package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petsfeed/config"
	"petsfeed/internal/domain/entity"
	"petsfeed/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.Config{
		Upstream: &config.UpstreamConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
			Token:   "test-token",
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.Default())
	assert.Error(t, err)
}

func TestOrderRepository_CreateOrder_RequestShape(t *testing.T) {
	var captured map[string]any

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "order-42",
			"storeId": "store-1",
			"storeName": "ZooMax",
			"status": "pending",
			"items": [{"productId": "product-2", "quantity": 2, "price": "189.99"}],
			"totalAmount": "379.98",
			"createdAt": "2026-08-30T10:00:00Z",
			"updatedAt": "2026-08-30T10:00:00Z"
		}`))
	}))

	repo := NewOrderRepository(client)
	order, err := repo.CreateOrder(context.Background(), repository.CreateOrderRequest{
		StoreID: "store-1",
		Items: []repository.OrderItemRequest{
			{ProductID: "product-2", Quantity: 2, Price: decimal.RequireFromString("189.99")},
		},
		TotalAmount:   decimal.RequireFromString("379.98"),
		CustomerName:  "Olena Kovalenko",
		CustomerPhone: "+380671234567",
	})
	require.NoError(t, err)

	// The upstream API speaks camelCase.
	assert.Equal(t, "store-1", captured["storeId"])
	assert.Equal(t, "Olena Kovalenko", captured["customerName"])
	assert.Equal(t, "+380671234567", captured["customerPhone"])
	_, hasEmail := captured["customerEmail"]
	assert.False(t, hasEmail, "empty optional fields are omitted")

	assert.Equal(t, "order-42", order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("379.98")))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "product-2", order.Items[0].ProductID)
}

func TestOrderRepository_GetOrder_NotFound(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "order not found", http.StatusNotFound)
	}))

	repo := NewOrderRepository(client)
	_, err := repo.GetOrder(context.Background(), "order-999")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_ListOrders_StatusQuery(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "ready", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	repo := NewOrderRepository(client)
	ready := entity.OrderStatusReady
	orders, err := repo.ListOrders(context.Background(), &ready)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_CancelOrder_Path(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders/order-7/cancel", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "order-7",
			"storeId": "store-1",
			"status": "cancelled",
			"totalAmount": "10.00",
			"createdAt": "2026-08-30T10:00:00Z",
			"updatedAt": "2026-08-30T11:00:00Z"
		}`))
	}))

	repo := NewOrderRepository(client)
	order, err := repo.CancelOrder(context.Background(), "order-7")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestCatalogRepository_GetProduct_NotFoundMapping(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such product", http.StatusNotFound)
	}))

	repo := NewCatalogRepository(client)
	_, err := repo.GetProduct(context.Background(), "product-999")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalogRepository_GetProductOffers_QueryShape(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/product-1/stores", r.URL.Path)
		assert.Equal(t, "50.45", r.URL.Query().Get("lat"))
		assert.Equal(t, "30.52", r.URL.Query().Get("lng"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"productId": "product-1",
			"storeId": "store-1",
			"storeName": "ZooMax",
			"price": "1299.99",
			"availability": "in_stock",
			"quantity": 15
		}]`))
	}))

	repo := NewCatalogRepository(client)
	offers, err := repo.GetProductOffers(context.Background(), "product-1",
		&entity.Location{Latitude: 50.45, Longitude: 30.52})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, entity.AvailabilityInStock, offers[0].Availability)
	assert.True(t, offers[0].Price.Equal(decimal.RequireFromString("1299.99")))
}

func TestStoreRepository_Nearby_QueryShape(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stores/nearby", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("radius"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": "store-1",
			"name": "ZooMax",
			"latitude": 50.4501,
			"longitude": 30.5234,
			"distance": 0.8
		}]`))
	}))

	repo := NewStoreRepository(client)
	stores, err := repo.NearbyStores(context.Background(),
		entity.Location{Latitude: 50.45, Longitude: 30.52}, 5)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.InDelta(t, 0.8, stores[0].DistanceKm, 0.001)
}
