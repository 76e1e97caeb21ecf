package server

import (
	"github.com/labstack/echo/v4"

	"github.com/kgview/kgview/internal/server/middleware"
	"github.com/kgview/kgview/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Session lifecycle routes
	apiRoutes.POST("/sessions", routes.CreateSessionHandler, middleware.RequirePermission("session.create"))
	apiRoutes.POST("/sessions/:id/load", routes.LoadSessionHandler, middleware.RequirePermission("session.load"))
	apiRoutes.DELETE("/sessions/:id", routes.DeleteSessionHandler, middleware.RequirePermission("session.delete"))

	// View routes
	apiRoutes.GET("/sessions/:id/graph", routes.GetSessionGraphHandler, middleware.RequirePermission("session.view"))
	apiRoutes.GET("/sessions/:id/schema", routes.GetSessionSchemaHandler, middleware.RequirePermission("session.view"))
	apiRoutes.GET("/sessions/:id/conditions", routes.GetSessionConditionsHandler, middleware.RequirePermission("session.view"))

	// Background and export routes
	apiRoutes.POST("/sessions/:id/refresh", routes.RefreshSessionHandler, middleware.RequirePermission("session.refresh"))
	apiRoutes.POST("/sessions/:id/export", routes.ExportSessionHandler, middleware.RequirePermission("session.export"))
}
