// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"keycard/config"
	"keycard/internal/delivery/api/middleware"
	"keycard/internal/delivery/api/router/handler"
	"keycard/internal/domain/service"
	"keycard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	CurrentUser *middleware.CurrentUserMiddleware
	Metrics     service.AuthMetrics
	Config      *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler *handler.AuthHandler
	userHandler *handler.UserHandler
	currentUser *middleware.CurrentUserMiddleware
	metrics     service.AuthMetrics
	config      *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler: params.AuthHandler,
		userHandler: params.UserHandler,
		currentUser: params.CurrentUser,
		metrics:     params.Metrics,
		config:      params.Config,
	}
}

// CurrentUser exposes the middleware that resolves the signed-in user; the server installs it
// after the session middleware.
func (r *router) CurrentUser() echo.MiddlewareFunc {
	return r.currentUser.Resolve
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if prom, ok := r.metrics.(*metrics.Prometheus); ok {
		e.GET(r.metricsPath(), echo.WrapHandler(prom.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/signin", r.authHandler.Signin)
		authGroup.POST("/signout", r.authHandler.Signout)
		authGroup.GET("/whoami", r.authHandler.WhoAmI, middleware.RequireUser)

		// Account lookup and management require a signed-in caller; the handlers further
		// restrict PATCH and DELETE to the caller's own account.
		authGroup.GET("", r.userHandler.FindUsers, middleware.RequireUser)
		authGroup.GET("/:id", r.userHandler.FindUser, middleware.RequireUser)
		authGroup.PATCH("/:id", r.userHandler.UpdateUser, middleware.RequireUser)
		authGroup.DELETE("/:id", r.userHandler.RemoveUser, middleware.RequireUser)
	}
}

func (r *router) metricsPath() string {
	if r.config == nil || r.config.Metrics == nil || r.config.Metrics.Path == "" {
		return "/metrics"
	}

	return r.config.Metrics.Path
}
