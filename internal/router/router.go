// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/task-tracker/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the credential endpoints. Register and login are
// open; /auth/me sits behind the bearer guard.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, guard echo.MiddlewareFunc) {
	g := e.Group("/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.GET("/me", a.Me, guard)
}

// RegisterTasks registers the task CRUD endpoints. Every route runs the
// bearer guard first; the cache middleware runs after it so it can key and
// invalidate per verified user.
func RegisterTasks(e *echo.Echo, t *handler.TaskHandler, guard echo.MiddlewareFunc, cache echo.MiddlewareFunc) {
	g := e.Group("/tasks")
	g.Use(guard)
	if cache != nil {
		g.Use(cache)
	}
	g.POST("", t.Create)
	g.GET("", t.List)
	g.PUT("/:id", t.Update)
	g.DELETE("/:id", t.Delete)
}
