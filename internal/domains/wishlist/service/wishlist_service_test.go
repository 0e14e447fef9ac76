package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookshop-backend/internal/domains/wishlist/model"
	"bookshop-backend/internal/domains/wishlist/repository/mocks"
)

func TestToggle_AddsWhenAbsent(t *testing.T) {
	repo := new(mocks.MockWishlistRepository)
	svc := NewWishlistService(repo)

	userID, bookID := uuid.New(), uuid.New()
	wishlist := &model.Wishlist{ID: uuid.New(), UserID: userID}

	repo.On("BookAvailable", mock.Anything, bookID).Return(true, nil)
	repo.On("GetOrCreate", mock.Anything, userID).Return(wishlist, nil)
	repo.On("Contains", mock.Anything, wishlist.ID, bookID).Return(false, nil)
	repo.On("AddBook", mock.Anything, wishlist.ID, bookID).Return(nil)

	result, err := svc.Toggle(context.Background(), userID, bookID)

	require.NoError(t, err)
	assert.True(t, result.InWishlist)
	repo.AssertNotCalled(t, "RemoveBook")
}

func TestToggle_RemovesWhenPresent(t *testing.T) {
	repo := new(mocks.MockWishlistRepository)
	svc := NewWishlistService(repo)

	userID, bookID := uuid.New(), uuid.New()
	wishlist := &model.Wishlist{ID: uuid.New(), UserID: userID}

	repo.On("BookAvailable", mock.Anything, bookID).Return(true, nil)
	repo.On("GetOrCreate", mock.Anything, userID).Return(wishlist, nil)
	repo.On("Contains", mock.Anything, wishlist.ID, bookID).Return(true, nil)
	repo.On("RemoveBook", mock.Anything, wishlist.ID, bookID).Return(nil)

	result, err := svc.Toggle(context.Background(), userID, bookID)

	require.NoError(t, err)
	assert.False(t, result.InWishlist)
	repo.AssertNotCalled(t, "AddBook")
}

func TestToggle_UnavailableBook(t *testing.T) {
	repo := new(mocks.MockWishlistRepository)
	svc := NewWishlistService(repo)

	bookID := uuid.New()
	repo.On("BookAvailable", mock.Anything, bookID).Return(false, nil)

	_, err := svc.Toggle(context.Background(), uuid.New(), bookID)

	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestList_CreatesWishlistOnFirstUse(t *testing.T) {
	repo := new(mocks.MockWishlistRepository)
	svc := NewWishlistService(repo)

	userID := uuid.New()
	wishlist := &model.Wishlist{ID: uuid.New(), UserID: userID}
	books := []model.WishlistBook{{BookID: uuid.New(), Title: "Dune"}}

	repo.On("GetOrCreate", mock.Anything, userID).Return(wishlist, nil)
	repo.On("ListBooks", mock.Anything, wishlist.ID).Return(books, nil)

	got, err := svc.List(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, books, got)
}
