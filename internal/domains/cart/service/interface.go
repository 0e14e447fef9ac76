package service

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/cart/model"
)

// ServiceInterface is the cart business logic contract.
type ServiceInterface interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error)
	AddBook(ctx context.Context, userID, bookID uuid.UUID) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
