package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bookshop-backend/internal/domains/cart/model"
	"bookshop-backend/internal/domains/cart/repository"
)

type cartService struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) ServiceInterface {
	return &cartService{cartRepo: cartRepo}
}

// GetCart returns the cart with totals computed from current book prices.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.cartRepo.GetItemsWithBooks(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	count := 0
	for _, item := range items {
		total = total.Add(item.Subtotal())
		count += item.Quantity
	}

	return &model.CartResponse{
		Cart:       *cart,
		Items:      items,
		Total:      total,
		ItemsCount: count,
	}, nil
}

// AddBook puts a book in the user's cart, incrementing the quantity when it
// is already there.
func (s *cartService) AddBook(ctx context.Context, userID, bookID uuid.UUID) (*model.CartItem, error) {
	available, err := s.cartRepo.BookAvailable(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, model.ErrBookNotFound
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.AddItem(ctx, cart.ID, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to add book to cart: %w", err)
	}

	return item, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	req := model.UpdateQuantityRequest{Quantity: quantity}
	if err := req.Validate(); err != nil {
		return err
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	return s.cartRepo.UpdateItemQuantity(ctx, cart.ID, itemID, quantity)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	return s.cartRepo.DeleteItem(ctx, cart.ID, itemID)
}

func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	return s.cartRepo.ClearItems(ctx, cart.ID)
}
