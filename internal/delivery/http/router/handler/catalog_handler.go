// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"petsfeed/internal/delivery/http/response"
	"petsfeed/internal/domain/entity"
	"petsfeed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search handles product search by free-text query and optional category.
func (h *CatalogHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	category := c.QueryParam("category")

	products, err := h.uc.SearchProducts(c.Request().Context(), query, category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct handles the request for a single product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// GetSummary handles the request for a product with its cross-store price
// range and stock information.
func (h *CatalogHandler) GetSummary(c echo.Context) error {
	summary, err := h.uc.GetProductSummary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Product summary retrieved successfully")
}

// GetOffers handles the request for a product's store offers, optionally
// ranked by proximity to the given coordinates.
func (h *CatalogHandler) GetOffers(c echo.Context) error {
	near, err := parseOptionalLocation(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat and lng must be valid coordinates")
	}

	offers, err := h.uc.GetProductOffers(c.Request().Context(), c.Param("id"), near)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers, "Offers retrieved successfully")
}

// Popular handles the request for trending products.
func (h *CatalogHandler) Popular(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	products, err := h.uc.PopularProducts(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Popular products retrieved successfully")
}

// ByCategory handles the request for all products within a category.
func (h *CatalogHandler) ByCategory(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return response.BadRequest(c, "INVALID_INPUT", "category is required")
	}

	products, err := h.uc.ProductsByCategory(c.Request().Context(), category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// parseOptionalLocation reads lat/lng query parameters. Both must be present
// for a location to be returned.
func parseOptionalLocation(c echo.Context) (*entity.Location, error) {
	latRaw := c.QueryParam("lat")
	lngRaw := c.QueryParam("lng")
	if latRaw == "" || lngRaw == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &entity.Location{Latitude: lat, Longitude: lng}, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
