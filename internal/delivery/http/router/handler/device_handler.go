package handler

import (
	"log/slog"
	"net/http"

	"purity/internal/delivery/http/response"
	domainerrors "purity/internal/domain/errors"
	"purity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device pairing endpoints.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterTokenRequest represents the request body for registering a push token.
type RegisterTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// RegisterToken stores or replaces the push token for a customer.
func (h *DeviceHandler) RegisterToken(c echo.Context) error {
	customerID := c.Param("id")

	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "token is required")
	}

	if err := h.uc.RegisterToken(c.Request().Context(), customerID, req.Token); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device token registered successfully")
}

// UnregisterToken removes the customer's push token.
func (h *DeviceHandler) UnregisterToken(c echo.Context) error {
	customerID := c.Param("id")

	if err := h.uc.UnregisterToken(c.Request().Context(), customerID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device token removed successfully")
}

// PairingQR renders the pairing QR code PNG for a customer.
func (h *DeviceHandler) PairingQR(c echo.Context) error {
	customerID := c.Param("id")

	png, err := h.uc.PairingQR(c.Request().Context(), customerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// handleAppError handles application errors
func (h *DeviceHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
