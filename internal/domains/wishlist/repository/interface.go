package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/wishlist/model"
)

// WishlistRepository is the data access contract for wishlists.
type WishlistRepository interface {
	// GetOrCreate returns the user's wishlist, creating it on first use.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Wishlist, error)

	Contains(ctx context.Context, wishlistID, bookID uuid.UUID) (bool, error)
	AddBook(ctx context.Context, wishlistID, bookID uuid.UUID) error
	RemoveBook(ctx context.Context, wishlistID, bookID uuid.UUID) error
	ListBooks(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistBook, error)
	BookAvailable(ctx context.Context, bookID uuid.UUID) (bool, error)
}
