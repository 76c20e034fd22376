package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListItems retrieves every wardrobe item across all profiles
func (db *DB) ListItems(ctx context.Context) ([]Item, error) {
	return db.queryItems(ctx,
		`SELECT id, name, category, profile_id, image FROM items ORDER BY id`)
}

// ListItemsByProfile retrieves one profile's wardrobe
func (db *DB) ListItemsByProfile(ctx context.Context, profileID uuid.UUID) ([]Item, error) {
	return db.queryItems(ctx,
		`SELECT id, name, category, profile_id, image FROM items WHERE profile_id = $1 ORDER BY id`,
		profileID)
}

// AddItem inserts a wardrobe item and returns the stored record
func (db *DB) AddItem(ctx context.Context, name, category string, profileID uuid.UUID, image *string) (*Item, error) {
	var item Item
	err := db.pool.QueryRow(ctx,
		`INSERT INTO items (name, category, profile_id, image)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, category, profile_id, image`,
		name, category, profileID, image,
	).Scan(&item.ID, &item.Name, &item.Category, &item.ProfileID, &item.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	return &item, nil
}

// DeleteItemByName deletes an item by name, optionally scoped to a profile.
// Returns the stored image filename (nil when the item had none) and whether
// anything was deleted.
func (db *DB) DeleteItemByName(ctx context.Context, name string, profileID *uuid.UUID) (*string, bool, error) {
	query := `SELECT image FROM items WHERE name = $1`
	args := []any{name}
	if profileID != nil {
		query += ` AND profile_id = $2`
		args = append(args, *profileID)
	}

	var image *string
	err := db.pool.QueryRow(ctx, query, args...).Scan(&image)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to look up item: %w", err)
	}

	del := `DELETE FROM items WHERE name = $1`
	if profileID != nil {
		del += ` AND profile_id = $2`
	}
	result, err := db.pool.Exec(ctx, del, args...)
	if err != nil {
		return nil, false, fmt.Errorf("failed to delete item: %w", err)
	}
	return image, result.RowsAffected() > 0, nil
}

func (db *DB) queryItems(ctx context.Context, query string, args ...any) ([]Item, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.ProfileID, &item.Image); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}
