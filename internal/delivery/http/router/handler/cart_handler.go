package handler

import (
	"log/slog"
	"net/http"

	"petsfeed/internal/delivery/http/response"
	"petsfeed/internal/domain/entity"
	domainerrors "petsfeed/internal/domain/errors"
	"petsfeed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CartHandler exposes the session cart over HTTP.
type CartHandler struct {
	cart    usecase.CartUsecase
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, catalog usecase.CatalogUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
		logger:  logger,
	}
}

// addCartItemRequest is the payload for adding a product to the cart.
type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	StoreID   string `json:"store_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// updateCartItemRequest is the payload for changing a line's quantity.
type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// cartView is the full cart state returned by every cart endpoint.
type cartView struct {
	Items      []entity.CartItem   `json:"items"`
	Groups     []entity.StoreGroup `json:"groups"`
	TotalItems int                 `json:"total_items"`
	TotalPrice decimal.Decimal     `json:"total_price"`
}

// Get handles the request for the current cart state.
func (h *CartHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.view(), "Cart retrieved successfully")
}

// AddItem resolves the product and the store's offer, then adds the requested
// quantity to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	offers, err := h.catalog.GetProductOffers(ctx, req.ProductID, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	var offer *entity.StoreOffer
	for i := range offers {
		if offers[i].StoreID == req.StoreID {
			offer = &offers[i]

			break
		}
	}
	if offer == nil {
		return domainerrors.ErrOfferNotFound
	}

	item, err := h.cart.AddItem(product, *offer, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

// UpdateItem changes the quantity of a cart line. A quantity of zero or less
// removes the line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	h.cart.UpdateQuantity(c.Param("id"), req.Quantity)

	return response.Success(c, http.StatusOK, h.view(), "Cart updated successfully")
}

// RemoveItem deletes a cart line. Unknown IDs are ignored.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	h.cart.RemoveItem(c.Param("id"))

	return response.Success(c, http.StatusOK, h.view(), "Item removed from cart")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	h.cart.Clear()

	return response.Success(c, http.StatusOK, h.view(), "Cart cleared")
}

func (h *CartHandler) view() cartView {
	return cartView{
		Items:      h.cart.Items(),
		Groups:     h.cart.GroupByStore(),
		TotalItems: h.cart.TotalItems(),
		TotalPrice: h.cart.TotalPrice(),
	}
}
