// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"purity/internal/delivery/http/middleware"
	"purity/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ExpiryHandler *handler.ExpiryHandler
	DeviceHandler *handler.DeviceHandler
	TriggerAuth   *middleware.TriggerAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	expiryHandler *handler.ExpiryHandler
	deviceHandler *handler.DeviceHandler
	triggerAuth   *middleware.TriggerAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		expiryHandler: params.ExpiryHandler,
		deviceHandler: params.DeviceHandler,
		triggerAuth:   params.TriggerAuth,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Scheduled trigger, invoked by the external scheduler with the cron secret
	cronGroup := e.Group("/cron")
	cronGroup.Use(r.triggerAuth.RequireCronSecret)
	{
		cronGroup.POST("/expiry-alerts", r.expiryHandler.RunAutoCheck)
	}

	// Operational endpoints, gated by the same shared secret
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.triggerAuth.RequireCronSecret)
	{
		adminGroup.POST("/expiry-alerts/run", r.expiryHandler.RunManualCheck)
		adminGroup.GET("/notification-logs", r.expiryHandler.GetNotificationHistory)
	}

	// Device pairing endpoints used by the dashboard backend
	customerGroup := e.Group("/customers")
	{
		customerGroup.PUT("/:id/device-token", r.deviceHandler.RegisterToken)
		customerGroup.DELETE("/:id/device-token", r.deviceHandler.UnregisterToken)
		customerGroup.GET("/:id/pairing-qr", r.deviceHandler.PairingQR)
	}
}
