package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookshop-backend/internal/domains/cart/model"
	"bookshop-backend/internal/domains/cart/repository/mocks"
)

func TestGetCart_Totals(t *testing.T) {
	repo := new(mocks.MockCartRepository)
	svc := NewCartService(repo)

	userID := uuid.New()
	cart := &model.Cart{ID: uuid.New(), UserID: userID}
	items := []model.CartItemWithBook{
		{
			CartItem: model.CartItem{ID: uuid.New(), Quantity: 2},
			Title:    "Dune",
			Price:    decimal.NewFromFloat(12.50),
		},
		{
			CartItem: model.CartItem{ID: uuid.New(), Quantity: 1},
			Title:    "Hyperion",
			Price:    decimal.NewFromFloat(9.99),
		},
	}

	repo.On("GetOrCreate", mock.Anything, userID).Return(cart, nil)
	repo.On("GetItemsWithBooks", mock.Anything, cart.ID).Return(items, nil)

	resp, err := svc.GetCart(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(34.99)), "got %s", resp.Total)
	assert.Equal(t, 3, resp.ItemsCount)
}

func TestGetCart_Empty(t *testing.T) {
	repo := new(mocks.MockCartRepository)
	svc := NewCartService(repo)

	userID := uuid.New()
	cart := &model.Cart{ID: uuid.New(), UserID: userID}

	repo.On("GetOrCreate", mock.Anything, userID).Return(cart, nil)
	repo.On("GetItemsWithBooks", mock.Anything, cart.ID).Return([]model.CartItemWithBook{}, nil)

	resp, err := svc.GetCart(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, resp.Total.IsZero())
	assert.Zero(t, resp.ItemsCount)
}

func TestAddBook_UnavailableBook(t *testing.T) {
	repo := new(mocks.MockCartRepository)
	svc := NewCartService(repo)

	bookID := uuid.New()
	repo.On("BookAvailable", mock.Anything, bookID).Return(false, nil)

	_, err := svc.AddBook(context.Background(), uuid.New(), bookID)

	assert.ErrorIs(t, err, model.ErrBookNotFound)
	repo.AssertNotCalled(t, "AddItem")
}

func TestAddBook_IncrementsExistingLine(t *testing.T) {
	repo := new(mocks.MockCartRepository)
	svc := NewCartService(repo)

	userID, bookID := uuid.New(), uuid.New()
	cart := &model.Cart{ID: uuid.New(), UserID: userID}
	item := &model.CartItem{ID: uuid.New(), CartID: cart.ID, BookID: bookID, Quantity: 3}

	repo.On("BookAvailable", mock.Anything, bookID).Return(true, nil)
	repo.On("GetOrCreate", mock.Anything, userID).Return(cart, nil)
	repo.On("AddItem", mock.Anything, cart.ID, bookID).Return(item, nil)

	got, err := svc.AddBook(context.Background(), userID, bookID)

	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
}

func TestUpdateQuantity_RejectsZero(t *testing.T) {
	repo := new(mocks.MockCartRepository)
	svc := NewCartService(repo)

	err := svc.UpdateQuantity(context.Background(), uuid.New(), uuid.New(), 0)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "UpdateItemQuantity")
}

func TestCartItemWithBook_Subtotal(t *testing.T) {
	item := model.CartItemWithBook{
		CartItem: model.CartItem{Quantity: 4},
		Price:    decimal.NewFromFloat(2.25),
	}

	assert.True(t, item.Subtotal().Equal(decimal.NewFromFloat(9.00)))
}
