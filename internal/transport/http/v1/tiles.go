package v1

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/domain"
)

// ListTiles returns all tiles.
// GET /api/tiles
func (h *Handler) ListTiles(c echo.Context) error {
	ctx := c.Request().Context()

	tiles, err := h.service.ListTiles(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list tiles: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, tiles)
}

// CreateTile validates and creates a tile.
// POST /api/tiles
func (h *Handler) CreateTile(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.TileInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "invalid request body",
		})
	}

	tile, err := h.service.CreateTile(ctx, input)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": vErr.Message,
				"field":   vErr.Field,
			})
		}
		log.Printf("ERROR: failed to create tile: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	return c.JSON(http.StatusCreated, tile)
}

// DeleteTile removes a tile by id.
// DELETE /api/tiles/:id
func (h *Handler) DeleteTile(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "invalid tile id",
			"field":   "id",
		})
	}

	if err := h.service.DeleteTile(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "tile not found"})
		}
		log.Printf("ERROR: failed to delete tile %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	return c.NoContent(http.StatusNoContent)
}
