package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cardwall/internal/cards"
)

// SchemaSQL creates the post table. Position is the list order the renderers
// rely on; it is the only ordering the demo recognizes.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS posts (
  position  INTEGER PRIMARY KEY,
  title     VARCHAR NOT NULL,
  body      VARCHAR NOT NULL
);
`

// PostRepository is the read/seed contract the renderers and binaries use.
type PostRepository interface {
	// Migrate creates the schema if needed.
	Migrate(ctx context.Context) error
	// Seed replaces the stored post list with the given items, in order.
	Seed(ctx context.Context, items []cards.Item) error
	// ListPosts returns all posts in list order.
	ListPosts(ctx context.Context) ([]cards.Item, error)
}

// Repo implements PostRepository over a DuckDB handle.
type Repo struct {
	db *sql.DB
}

// NewRepo creates a repository over an open database handle.
func NewRepo(db *sql.DB) (*Repo, error) {
	if db == nil {
		return nil, errors.New("db handle is required")
	}
	return &Repo{db: db}, nil
}

// Migrate creates the posts table if it does not exist.
func (r *Repo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("failed to migrate posts schema: %w", err)
	}
	return nil
}

// Seed replaces the stored post list with items, preserving their order.
func (r *Repo) Seed(ctx context.Context, items []cards.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return fmt.Errorf("failed to clear posts: %w", err)
	}
	for i, it := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO posts (position, title, body) VALUES (?, ?, ?)`,
			i, it.Title, it.Body,
		)
		if err != nil {
			return fmt.Errorf("failed to insert post %q: %w", it.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed tx: %w", err)
	}
	return nil
}

// ListPosts returns all posts in list order.
func (r *Repo) ListPosts(ctx context.Context) ([]cards.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT title, body FROM posts ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var items []cards.Item
	for rows.Next() {
		var it cards.Item
		if err := rows.Scan(&it.Title, &it.Body); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	return items, nil
}

// DefaultPosts returns the demo's fixture list.
func DefaultPosts() []cards.Item {
	return []cards.Item{
		{Title: "Post 1", Body: "First post"},
		{Title: "Post 2", Body: "Second post"},
	}
}
