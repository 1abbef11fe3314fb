package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := store.seedTiles(); err != nil {
		// Don't fail startup for this
		fmt.Printf("Failed to seed tiles: %v\n", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS tiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			icon TEXT NOT NULL,
			color TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_created ON messages(created_at, id)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// seedTiles inserts the starter tiles on a fresh database.
func (s *SQLiteStore) seedTiles() error {
	ctx := context.Background()
	existing, err := s.ListTiles(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	tiles := []domain.Tile{
		{Title: "Google", URL: "https://google.com", Icon: "Search", Color: "bg-blue-500"},
		{Title: "GitHub", URL: "https://github.com", Icon: "Github", Color: "bg-gray-800"},
		{Title: "YouTube", URL: "https://youtube.com", Icon: "Youtube", Color: "bg-red-600"},
		{Title: "Twitter", URL: "https://twitter.com", Icon: "Twitter", Color: "bg-blue-400"},
	}
	for i := range tiles {
		if err := s.CreateTile(ctx, &tiles[i]); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateTile inserts a tile and fills in its assigned id.
func (s *SQLiteStore) CreateTile(ctx context.Context, tile *domain.Tile) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tiles (title, url, icon, color) VALUES (?, ?, ?, ?)`,
		tile.Title, tile.URL, tile.Icon, tile.Color)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	tile.ID = id
	return nil
}

// ListTiles retrieves all tiles.
func (s *SQLiteStore) ListTiles(ctx context.Context) ([]domain.Tile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, url, icon, color FROM tiles ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiles := []domain.Tile{}
	for rows.Next() {
		var t domain.Tile
		if err := rows.Scan(&t.ID, &t.Title, &t.URL, &t.Icon, &t.Color); err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, rows.Err()
}

// GetTile retrieves a tile by id. Returns nil, nil when absent.
func (s *SQLiteStore) GetTile(ctx context.Context, id int64) (*domain.Tile, error) {
	var t domain.Tile
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, url, icon, color FROM tiles WHERE id = ?`,
		id).Scan(&t.ID, &t.Title, &t.URL, &t.Icon, &t.Color)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTile removes a tile. Returns domain.ErrNotFound when no row
// matched, so the route layer can report 404.
func (s *SQLiteStore) DeleteTile(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tiles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateMessage appends a chat message. The store assigns id and
// created_at; the message is never mutated afterwards.
func (s *SQLiteStore) CreateMessage(ctx context.Context, msg *domain.Message) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (role, content, created_at) VALUES (?, ?, ?)`,
		msg.Role, msg.Content, msg.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	msg.ID = id
	return nil
}

// ListMessages retrieves all messages ordered by creation time
// ascending, ties broken by insertion id.
func (s *SQLiteStore) ListMessages(ctx context.Context) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, role, content, created_at FROM messages ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
