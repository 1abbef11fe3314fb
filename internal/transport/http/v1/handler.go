// Package v1 provides HTTP handlers for the dashboard API.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Chat API
	e.GET("/api/chat", h.GetChatHistory)
	e.POST("/api/chat", h.SendChatMessage)

	// Tiles API
	e.GET("/api/tiles", h.ListTiles)
	e.POST("/api/tiles", h.CreateTile)
	e.DELETE("/api/tiles/:id", h.DeleteTile)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
