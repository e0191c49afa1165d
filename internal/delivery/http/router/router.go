// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petsfeed/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	StoreHandler    *handler.StoreHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	storeHandler    *handler.StoreHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		storeHandler:    params.StoreHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Product catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("/search", r.catalogHandler.Search)
		productGroup.GET("/popular", r.catalogHandler.Popular)
		productGroup.GET("/category", r.catalogHandler.ByCategory)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
		productGroup.GET("/:id/summary", r.catalogHandler.GetSummary)
		productGroup.GET("/:id/stores", r.catalogHandler.GetOffers)
	}

	// Store routes
	storeGroup := e.Group("/stores")
	{
		storeGroup.GET("", r.storeHandler.List)
		storeGroup.GET("/nearby", r.storeHandler.Nearby)
		storeGroup.GET("/:id", r.storeHandler.Get)
	}

	// Cart routes operate on the single session cart
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	// Checkout splits the cart into one order per store
	e.POST("/checkout", r.checkoutHandler.PlaceOrder)

	// Order tracking routes
	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/active", r.orderHandler.Active)
		orderGroup.GET("/history", r.orderHandler.History)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.POST("/:id/cancel", r.orderHandler.Cancel)
	}
}
