package db

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a wardrobe owner or household member.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	IsOwner      bool      `json:"isOwner"`
	PasswordHash *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Item is a single wardrobe item. Image holds the stored upload filename, if
// the item was added with a photo.
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	ProfileID uuid.UUID `json:"profileId"`
	Image     *string   `json:"image"`
}

// Favorite is a saved outfit suggestion for an occasion.
type Favorite struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profileId"`
	Occasion    string    `json:"occasion"`
	Items       []string  `json:"items"`
	Explanation string    `json:"explanation"`
	SavedAt     time.Time `json:"savedAt"`
}
