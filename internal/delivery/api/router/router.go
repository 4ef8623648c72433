// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"callbell/internal/delivery/api/middleware"
	"callbell/internal/delivery/api/router/handler"
	"callbell/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler  *handler.DeviceHandler
	CallHandler    *handler.CallHandler
	TableQRHandler *handler.TableQRHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler  *handler.DeviceHandler
	callHandler    *handler.CallHandler
	tableQRHandler *handler.TableQRHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:  params.DeviceHandler,
		callHandler:    params.CallHandler,
		tableQRHandler: params.TableQRHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus scrape endpoint
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Station endpoints, guarded by station keys when auth is enabled. The guard is
	// attached per route: a group would register catch-all routes and turn 404/405
	// answers into 401.
	auth := r.authMiddleware.Authenticate
	e.POST("/register-device", r.deviceHandler.RegisterDevice, auth)
	e.POST("/send-call", r.callHandler.SendCall, auth)
	e.POST("/claim-call", r.callHandler.ClaimCall, auth)
	e.POST("/table-qr", r.tableQRHandler.GenerateTableQR, auth)
}
