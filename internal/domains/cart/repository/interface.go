package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/cart/model"
)

// CartRepository is the data access contract for carts.
type CartRepository interface {
	// GetOrCreate returns the user's cart, creating it on first use.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// AddItem inserts a line for the book or increments its quantity by one.
	AddItem(ctx context.Context, cartID, bookID uuid.UUID) (*model.CartItem, error)

	GetItemsWithBooks(ctx context.Context, cartID uuid.UUID) ([]model.CartItemWithBook, error)
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error
	ClearItems(ctx context.Context, cartID uuid.UUID) error
	BookAvailable(ctx context.Context, bookID uuid.UUID) (bool, error)
}
