package menu

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LIST MENU ITEMS
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, category, name, description, price::text, image_ref, tags
		FROM menu_items
		ORDER BY position, id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query menu_items")
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var (
			it    Item
			price string
		)
		if err := rows.Scan(
			&it.ID,
			&it.Category,
			&it.Name,
			&it.Description,
			&price,
			&it.ImageRef,
			&it.Tags,
		); err != nil {
			return nil, errors.Wrap(err, "scan menu item")
		}

		it.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, errors.Wrapf(err, "menu item %d price", it.ID)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// UPSERT MENU ITEMS (CATALOG SYNC)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(ctx context.Context, items []Item) error {
	if err := ValidateItems(items); err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for pos, it := range items {
			tags := it.Tags
			if tags == nil {
				tags = []string{}
			}

			_, err := tx.Exec(ctx, `
				INSERT INTO menu_items (
					id, position, category, name, description, price, image_ref, tags, updated_at
				)
				VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, now())
				ON CONFLICT (id) DO UPDATE SET
					position = EXCLUDED.position,
					category = EXCLUDED.category,
					name = EXCLUDED.name,
					description = EXCLUDED.description,
					price = EXCLUDED.price,
					image_ref = EXCLUDED.image_ref,
					tags = EXCLUDED.tags,
					updated_at = now()
			`, it.ID, pos, it.Category, it.Name, it.Description, it.Price.String(), it.ImageRef, tags)
			if err != nil {
				return errors.Wrapf(err, "upsert menu item %d", it.ID)
			}
		}
		return nil
	})
}
