package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// Connect opens a pool against dsn and pings it before returning.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parse database url")
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, errors.Wrap(err, "open pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "postgres connection failed")
	}

	return pool, nil
}

// InitSchema creates the catalog table if it is missing.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL DEFAULT 0,
			category VARCHAR(100) NOT NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			image_ref VARCHAR(500) NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, menuItemsSQL); err != nil {
		return errors.Wrap(err, "create menu_items")
	}

	positionIndexSQL := `
		CREATE INDEX IF NOT EXISTS menu_items_position_idx
		ON menu_items (position, id)
	`
	if _, err := pool.Exec(ctx, positionIndexSQL); err != nil {
		return errors.Wrap(err, "create menu_items index")
	}

	return nil
}
