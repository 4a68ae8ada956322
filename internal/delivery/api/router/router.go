// Package router contains routing for the device hub HTTP delivery.
package router

import (
	"pushreg/internal/delivery/api/middleware"
	"pushreg/internal/delivery/api/router/handler"
	"pushreg/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler  *handler.DeviceHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler  *handler.DeviceHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:  params.DeviceHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	// Every API v1 route is reserved for device agents
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	apiV1.Use(r.authMiddleware.RequireRole(entity.RoleDeviceAgent))

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("/:deviceId", r.deviceHandler.GetDevice)
		devicesGroup.DELETE("/:deviceId", r.deviceHandler.DeactivateDevice)
	}

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("/:userId/devices", r.deviceHandler.GetUserDevices)
	}
}
