package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bookshop-backend/internal/domains/wishlist/model"
)

type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Wishlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) Contains(ctx context.Context, wishlistID, bookID uuid.UUID) (bool, error) {
	args := m.Called(ctx, wishlistID, bookID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepository) AddBook(ctx context.Context, wishlistID, bookID uuid.UUID) error {
	args := m.Called(ctx, wishlistID, bookID)
	return args.Error(0)
}

func (m *MockWishlistRepository) RemoveBook(ctx context.Context, wishlistID, bookID uuid.UUID) error {
	args := m.Called(ctx, wishlistID, bookID)
	return args.Error(0)
}

func (m *MockWishlistRepository) ListBooks(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistBook, error) {
	args := m.Called(ctx, wishlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WishlistBook), args.Error(1)
}

func (m *MockWishlistRepository) BookAvailable(ctx context.Context, bookID uuid.UUID) (bool, error) {
	args := m.Called(ctx, bookID)
	return args.Bool(0), args.Error(1)
}
