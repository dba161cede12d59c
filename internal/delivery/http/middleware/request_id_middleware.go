package middleware

import (
	deliverycontext "purity/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID assigns every request a tracking ID, reusing the caller-provided
// one when present, and echoes it back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			deliverycontext.SetRequestID(c, requestID)
			c.SetRequest(c.Request().WithContext(
				deliverycontext.WithRequestID(c.Request().Context(), requestID),
			))
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			return next(c)
		}
	}
}
