package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/domain"
)

// sendMessageRequest is the client payload for submitting a message.
type sendMessageRequest struct {
	Message string `json:"message"`
}

// GetChatHistory returns all chat messages in creation order.
// GET /api/chat
func (h *Handler) GetChatHistory(c echo.Context) error {
	ctx := c.Request().Context()

	messages, err := h.service.ListMessages(ctx)
	if err != nil {
		log.Printf("ERROR: failed to get chat history: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, messages)
}

// SendChatMessage runs one chat turn and returns the assistant reply
// plus the automation directive, if any.
// POST /api/chat
func (h *Handler) SendChatMessage(c echo.Context) error {
	ctx := c.Request().Context()

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "invalid request body",
		})
	}

	turn, err := h.service.SendMessage(ctx, req.Message)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": vErr.Message,
				"field":   vErr.Field,
			})
		}
		// Provider and storage errors are logged in full but never
		// leaked to the client.
		log.Printf("ERROR: chat turn failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, turn)
}
