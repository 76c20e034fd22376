package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// SaveFavorite stores an outfit the user wants to keep. Items are the exact
// item names from the suggestion, stored as a JSON array.
func (db *DB) SaveFavorite(ctx context.Context, profileID uuid.UUID, occasion string, items []string, explanation string) (*Favorite, error) {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal favorite items: %w", err)
	}

	fav := Favorite{Items: items}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO favorites (profile_id, occasion, items, explanation)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, profile_id, occasion, explanation, saved_at`,
		profileID, occasion, itemsJSON, explanation,
	).Scan(&fav.ID, &fav.ProfileID, &fav.Occasion, &fav.Explanation, &fav.SavedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save favorite: %w", err)
	}
	return &fav, nil
}

// ListFavoritesByProfile retrieves one profile's saved outfits
func (db *DB) ListFavoritesByProfile(ctx context.Context, profileID uuid.UUID) ([]Favorite, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, profile_id, occasion, items, COALESCE(explanation, ''), saved_at
		 FROM favorites WHERE profile_id = $1 ORDER BY saved_at DESC`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		var fav Favorite
		var itemsJSON []byte
		if err := rows.Scan(&fav.ID, &fav.ProfileID, &fav.Occasion, &itemsJSON, &fav.Explanation, &fav.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &fav.Items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal favorite items: %w", err)
		}
		favorites = append(favorites, fav)
	}
	return favorites, nil
}

// DeleteFavorite removes a saved outfit, reporting whether it existed
func (db *DB) DeleteFavorite(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
