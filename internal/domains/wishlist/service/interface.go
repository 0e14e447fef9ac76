package service

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/wishlist/model"
)

// ServiceInterface is the wishlist business logic contract.
type ServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.WishlistBook, error)
	Toggle(ctx context.Context, userID, bookID uuid.UUID) (*model.ToggleResult, error)
}
