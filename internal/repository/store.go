// Package store provides persistence for tiles and chat messages.
package store

import (
	"context"

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/domain"
)

// Store defines the persistence operations used by the service layer.
// It is injected explicitly rather than held as a package-level
// singleton so tests can substitute an in-memory database.
type Store interface {
	// Tiles
	CreateTile(ctx context.Context, tile *domain.Tile) error
	ListTiles(ctx context.Context) ([]domain.Tile, error)
	GetTile(ctx context.Context, id int64) (*domain.Tile, error)
	DeleteTile(ctx context.Context, id int64) error

	// Chat messages (append-only)
	CreateMessage(ctx context.Context, msg *domain.Message) error
	ListMessages(ctx context.Context) ([]domain.Message, error)

	Close() error
}
