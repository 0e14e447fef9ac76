package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wishlist is a user's saved-books set. Each user has exactly one.
type Wishlist struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WishlistBook is a saved book joined with its current catalog data.
type WishlistBook struct {
	BookID      uuid.UUID       `json:"book_id" db:"book_id"`
	Title       string          `json:"title" db:"title"`
	Author      string          `json:"author" db:"author"`
	Price       decimal.Decimal `json:"price" db:"price"`
	CoverURL    *string         `json:"cover_url" db:"cover_url"`
	IsAvailable bool            `json:"is_available" db:"is_available"`
	AddedAt     time.Time       `json:"added_at" db:"added_at"`
}

// ToggleResult reports the state after a toggle.
type ToggleResult struct {
	BookID     uuid.UUID `json:"book_id"`
	InWishlist bool      `json:"in_wishlist"`
}
