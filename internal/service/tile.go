package service

import (
	"context"
	"fmt"

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/domain"
)

// ListTiles returns all tiles.
func (s *Service) ListTiles(ctx context.Context) ([]domain.Tile, error) {
	tiles, err := s.store.ListTiles(ctx)
	if err != nil {
		return nil, &domain.StorageError{Op: "list tiles", Err: err}
	}
	return tiles, nil
}

// CreateTile validates the input and persists a new tile.
func (s *Service) CreateTile(ctx context.Context, input domain.TileInput) (*domain.Tile, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"url", input.URL},
		{"icon", input.Icon},
		{"color", input.Color},
	}
	for _, f := range fields {
		if f.value == "" {
			return nil, domain.NewValidationError(f.name, fmt.Sprintf("%s is required", f.name))
		}
	}

	tile := &domain.Tile{
		Title: input.Title,
		URL:   input.URL,
		Icon:  input.Icon,
		Color: input.Color,
	}
	if err := s.store.CreateTile(ctx, tile); err != nil {
		return nil, &domain.StorageError{Op: "create tile", Err: err}
	}
	return tile, nil
}

// DeleteTile removes a tile. Deleting an absent id surfaces
// domain.ErrNotFound rather than succeeding silently.
func (s *Service) DeleteTile(ctx context.Context, id int64) error {
	err := s.store.DeleteTile(ctx, id)
	if err == nil {
		return nil
	}
	if err == domain.ErrNotFound {
		return err
	}
	return &domain.StorageError{Op: "delete tile", Err: err}
}
