package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListProfiles retrieves all profiles
func (db *DB) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, is_owner, created_at FROM profiles ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.IsOwner, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// CreateProfile creates a regular (non-owner) profile
func (db *DB) CreateProfile(ctx context.Context, name string) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (name) VALUES ($1)
		 RETURNING id, name, is_owner, created_at`,
		name,
	).Scan(&p.ID, &p.Name, &p.IsOwner, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &p, nil
}

// CreateOwnerProfile creates an owner profile with login credentials
func (db *DB) CreateOwnerProfile(ctx context.Context, name, passwordHash string) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (name, is_owner, password_hash) VALUES ($1, TRUE, $2)
		 RETURNING id, name, is_owner, created_at`,
		name, passwordHash,
	).Scan(&p.ID, &p.Name, &p.IsOwner, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create owner profile: %w", err)
	}
	return &p, nil
}

// GetProfile retrieves a profile by ID, nil when absent
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, is_owner, created_at FROM profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.IsOwner, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// GetOwnerByName retrieves an owner profile with its password hash for login
func (db *DB) GetOwnerByName(ctx context.Context, name string) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, is_owner, password_hash, created_at
		 FROM profiles WHERE name = $1 AND is_owner`,
		name,
	).Scan(&p.ID, &p.Name, &p.IsOwner, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owner profile: %w", err)
	}
	return &p, nil
}

// DeleteProfile removes a profile. Items and favorites go with it via
// cascade; the stored image filenames of the profile's items are returned so
// the caller can clean up the files on disk.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT image FROM items WHERE profile_id = $1 AND image IS NOT NULL`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile images: %w", err)
	}
	defer rows.Close()

	var images []string
	for rows.Next() {
		var image string
		if err := rows.Scan(&image); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, image)
	}
	rows.Close()

	result, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, fmt.Errorf("profile not found: %s", id)
	}
	return images, nil
}
