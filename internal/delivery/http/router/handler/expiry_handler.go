// Package handler contains the HTTP handlers of the service.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"purity/internal/delivery/http/response"
	"purity/internal/domain/entity"
	domainerrors "purity/internal/domain/errors"
	"purity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExpiryHandler holds dependencies for the expiry check run endpoints.
type ExpiryHandler struct {
	uc     usecase.ExpiryCheckUsecase
	logger *slog.Logger
}

// NewExpiryHandler is the constructor for ExpiryHandler.
func NewExpiryHandler(uc usecase.ExpiryCheckUsecase, logger *slog.Logger) *ExpiryHandler {
	return &ExpiryHandler{
		uc:     uc,
		logger: logger,
	}
}

// RunAutoCheck handles a scheduled trigger of the expiry check. The cron
// secret has already been verified by the trigger auth middleware.
func (h *ExpiryHandler) RunAutoCheck(c echo.Context) error {
	return h.runCheck(c, entity.TriggerAuto)
}

// RunManualCheck handles an on-demand trigger of the expiry check.
func (h *ExpiryHandler) RunManualCheck(c echo.Context) error {
	return h.runCheck(c, entity.TriggerManual)
}

func (h *ExpiryHandler) runCheck(c echo.Context, trigger entity.TriggerType) error {
	summary, err := h.uc.RunExpiryCheck(c.Request().Context(), trigger)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			// The zeroed summary still goes back to the caller so the
			// response shape stays stable on fetch failure.
			return response.ErrorWithData(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details(), summary)
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, summary.Message)
}

// GetNotificationHistory handles retrieving the audit log of notification
// attempts, optionally filtered to one customer.
func (h *ExpiryHandler) GetNotificationHistory(c echo.Context) error {
	customerID := c.QueryParam("customer_id")
	limit := 20
	offset := 0

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsedOffset, err := strconv.Atoi(offsetStr); err == nil && parsedOffset >= 0 {
			offset = parsedOffset
		}
	}

	logs, err := h.uc.GetNotificationHistory(c.Request().Context(), customerID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to fetch notification history", slog.Any("error", err))

		return response.InternalServerError(c, "NOTIFICATION_LOG_QUERY_FAILED", "Failed to read notification logs")
	}

	return response.Success(c, http.StatusOK, logs, "Notification history retrieved successfully")
}
