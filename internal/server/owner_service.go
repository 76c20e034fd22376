package server

import (
	"context"
	"fmt"

	"github.com/meera/wardrobe-stylist/internal/config"
	"github.com/meera/wardrobe-stylist/internal/db"
)

// OwnerStore is the subset of storage the owner service needs.
type OwnerStore interface {
	GetOwnerByName(ctx context.Context, name string) (*db.Profile, error)
	CreateOwnerProfile(ctx context.Context, name, passwordHash string) (*db.Profile, error)
}

// OwnerService provides business logic for owner account operations.
// Owners are profiles with login credentials; they can delete profiles and
// everything hanging off them.
type OwnerService struct {
	store          OwnerStore
	passwordConfig *config.PasswordConfig
}

// NewOwnerService creates a new OwnerService with the given dependencies
func NewOwnerService(store OwnerStore, passwordConfig *config.PasswordConfig) *OwnerService {
	return &OwnerService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new owner profile with password authentication
func (s *OwnerService) Register(ctx context.Context, name, password string) (*db.Profile, error) {
	existing, err := s.store.GetOwnerByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check owner existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrNameAlreadyExists{Name: name}
	}

	passwordHash, err := s.passwordConfig.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile, err := s.store.CreateOwnerProfile(ctx, name, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create owner profile: %w", err)
	}
	return profile, nil
}

// Login authenticates an owner and returns the profile
func (s *OwnerService) Login(ctx context.Context, name, password string) (*db.Profile, error) {
	profile, err := s.store.GetOwnerByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner profile: %w", err)
	}

	// Always return the same generic error for an unknown name and a wrong
	// password.
	if profile == nil || profile.PasswordHash == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(password, *profile.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return profile, nil
}
