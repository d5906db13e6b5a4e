package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "koerplan/internal/delivery/context"
	"koerplan/internal/delivery/http/response"
	"koerplan/internal/delivery/http/validator"
	domainerrors "koerplan/internal/domain/errors"
	"koerplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LedgerHandlerParams holds dependencies for LedgerHandler, injected by Fx.
type LedgerHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// LedgerHandler selects the ledger template and saves the displayed trip
type LedgerHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler
func NewLedgerHandler(params LedgerHandlerParams) *LedgerHandler {
	return &LedgerHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SelectLedgerRequest represents the request body for choosing a template
type SelectLedgerRequest struct {
	Path string `json:"path" validate:"required"`
}

// SaveRequest represents the request body for a save action
type SaveRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// SelectLedger remembers the template the ledger is kept next to
func (h *LedgerHandler) SelectLedger(c echo.Context) error {
	var req SelectLedgerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Ugyldig forespørgsel")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrLedgerNotSelected)
	}

	state, err := h.sessionUC.SelectLedger(c.Request().Context(), req.Path)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// Save appends the displayed trip to the ledger
func (h *LedgerHandler) Save(c echo.Context) error {
	var req SaveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Ugyldig forespørgsel")
	}

	if err := c.Validate(&req); err != nil {
		failed := domainerrors.ErrValidationFailed
		return response.Error(c, failed.HTTPCode(), failed.ErrorCode(), failed.Message(), validator.FieldErrors(err))
	}

	result, err := h.sessionUC.Save(c.Request().Context(), req.Date)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Save failed", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, result, result.Message)
}
