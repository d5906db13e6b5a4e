// Package handler contains the HTTP handlers of the local API.
package handler

import (
	"log/slog"
	"net/http"

	"koerplan/internal/delivery/http/response"
	"koerplan/internal/delivery/http/validator"
	"koerplan/internal/domain/entity"
	domainerrors "koerplan/internal/domain/errors"
	"koerplan/internal/infra/geometry"
	"koerplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

// TripHandlerParams holds dependencies for TripHandler, injected by Fx.
type TripHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// TripHandler serves the search form and the displayed trip
type TripHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewTripHandler is the constructor for TripHandler
func NewTripHandler(params TripHandlerParams) *TripHandler {
	return &TripHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Search composes a direct trip
func (h *TripHandler) Search(c echo.Context) error {
	return h.search(c, entity.RouteModeDirect)
}

// SearchFerry composes a trip that crosses by ferry
func (h *TripHandler) SearchFerry(c echo.Context) error {
	return h.search(c, entity.RouteModeFerry)
}

func (h *TripHandler) search(c echo.Context, mode entity.RouteMode) error {
	var req usecase.SearchInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Ugyldig forespørgsel")
	}

	if err := c.Validate(&req); err != nil {
		missing := domainerrors.ErrMissingAddresses
		return response.Error(c, missing.HTTPCode(), missing.ErrorCode(), missing.Message(), validator.FieldErrors(err))
	}
	req.Mode = mode

	state, err := h.sessionUC.Search(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// GetState returns what the session currently displays
func (h *TripHandler) GetState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessionUC.State(c.Request().Context()))
}

// Reset clears the search form and the displayed trip
func (h *TripHandler) Reset(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessionUC.Reset(c.Request().Context()))
}

// GeoJSON exports the displayed trip as a feature collection for a map view
func (h *TripHandler) GeoJSON(c echo.Context) error {
	state := h.sessionUC.State(c.Request().Context())
	if state.Trip == nil {
		return response.HandleAppError(c, domainerrors.ErrNoTrip)
	}

	fc, err := geometry.TripFeatureCollection(state.Trip)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInternalError.WithCause(err))
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInternalError.WithCause(err))
	}

	return c.Blob(http.StatusOK, geoJSONContentType, body)
}
