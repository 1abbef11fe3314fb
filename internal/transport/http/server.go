// Package http provides the HTTP server implementation for the dashboard.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/service"
	v1 "github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/transport/http/v1"
)

// NewServer creates and configures the dashboard HTTP server.
func NewServer(svc *service.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	handler := v1.NewHandler(svc)
	handler.RegisterRoutes(e)

	return e
}
