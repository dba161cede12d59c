// Package middleware contains the HTTP middleware of the service.
package middleware

import (
	"crypto/subtle"
	"strings"

	"purity/config"
	"purity/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// TriggerAuthMiddleware guards the run trigger endpoints with the shared
// cron secret. An unauthorized invocation is rejected before the usecase is
// reached, so it can have no side effects.
type TriggerAuthMiddleware struct {
	cfg *config.Config
}

// NewTriggerAuthMiddleware is the constructor for TriggerAuthMiddleware.
func NewTriggerAuthMiddleware(cfg *config.Config) *TriggerAuthMiddleware {
	return &TriggerAuthMiddleware{cfg: cfg}
}

// RequireCronSecret validates the bearer credential against the configured
// cron secret.
func (m *TriggerAuthMiddleware) RequireCronSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secret := m.cfg.SecretKey.Cron
		if secret == "" {
			// A missing secret locks the triggers instead of opening them.
			return response.Unauthorized(c, "TRIGGER_UNAUTHORIZED", "Trigger credential is not configured")
		}

		authHeader := c.Request().Header.Get("Authorization")
		presented := strings.TrimPrefix(authHeader, "Bearer ")
		if presented == authHeader {
			return response.Unauthorized(c, "TRIGGER_UNAUTHORIZED", "Invalid credential format, must be Bearer token")
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
			return response.Unauthorized(c, "TRIGGER_UNAUTHORIZED", "Missing or invalid trigger credential")
		}

		return next(c)
	}
}
