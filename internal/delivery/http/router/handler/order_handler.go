package handler

import (
	"log/slog"
	"net/http"

	"petsfeed/internal/delivery/http/response"
	"petsfeed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order tracking handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the request for the user's orders, optionally filtered by
// status.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// Active handles the request for orders awaiting pickup.
func (h *OrderHandler) Active(c echo.Context) error {
	orders, err := h.uc.ActiveOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Active orders retrieved successfully")
}

// History handles the request for completed and cancelled orders.
func (h *OrderHandler) History(c echo.Context) error {
	orders, err := h.uc.OrderHistory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Order history retrieved successfully")
}

// Get handles the request for a single order.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// Cancel handles the request to cancel an order that has not been prepared
// yet.
func (h *OrderHandler) Cancel(c echo.Context) error {
	order, err := h.uc.CancelOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}
