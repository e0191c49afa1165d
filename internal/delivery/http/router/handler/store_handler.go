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

// StoreHandler holds dependencies for store browsing handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the request for all stores.
func (h *StoreHandler) List(c echo.Context) error {
	stores, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Stores retrieved successfully")
}

// Get handles the request for a single store.
func (h *StoreHandler) Get(c echo.Context) error {
	store, err := h.uc.GetStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// Nearby handles the request for stores around a location.
func (h *StoreHandler) Nearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat must be a valid coordinate")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "lng must be a valid coordinate")
	}

	// Radius is optional; the usecase applies the configured default.
	var radiusKm float64
	if raw := c.QueryParam("radius"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "radius must be a number of kilometers")
		}
	}

	origin := entity.Location{Latitude: lat, Longitude: lng}
	stores, err := h.uc.NearbyStores(c.Request().Context(), origin, radiusKm)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Nearby stores retrieved successfully")
}
