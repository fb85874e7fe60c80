// Package store provides DuckDB-backed persistence for the post list. It is
// the data-loading collaborator of the demo: the renderers only ever see the
// ordered []cards.Item it produces.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb" // Register DuckDB driver
)

// Client defines the contract for database access.
type Client interface {
	// DB returns the underlying sql.DB instance.
	DB() *sql.DB
	// Close releases database resources.
	Close() error
	// Ping verifies database connectivity.
	Ping(ctx context.Context) error
}

// DuckDBClient manages the physical connection to a DuckDB database.
type DuckDBClient struct {
	db      *sql.DB
	timeout time.Duration
}

// DuckDBOption configures the DuckDB client.
type DuckDBOption func(*DuckDBClient)

// WithTimeout sets the connect/query timeout.
func WithTimeout(d time.Duration) DuckDBOption {
	return func(c *DuckDBClient) {
		c.timeout = d
	}
}

// NewDuckDBClient creates a new DuckDB client. An empty dsn opens an
// in-memory database; otherwise dsn is a file path.
func NewDuckDBClient(dsn string, opts ...DuckDBOption) (*DuckDBClient, error) {
	client := &DuckDBClient{}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	ctx := context.Background()
	if client.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, client.timeout)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	// DuckDB is embedded; serial access is safer for writes
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	client.db = db
	return client, nil
}

// DB returns the underlying sql.DB instance.
func (c *DuckDBClient) DB() *sql.DB {
	return c.db
}

// Close releases database resources.
func (c *DuckDBClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Ping verifies database connectivity.
func (c *DuckDBClient) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// NewInMemoryDB opens an in-memory DuckDB instance.
func NewInMemoryDB(opts ...DuckDBOption) (*DuckDBClient, error) {
	return NewDuckDBClient("", opts...)
}

// NewFileDB opens a file-backed DuckDB instance.
func NewFileDB(path string, opts ...DuckDBOption) (*DuckDBClient, error) {
	return NewDuckDBClient(path, opts...)
}
