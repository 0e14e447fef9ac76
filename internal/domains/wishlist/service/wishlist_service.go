package service

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/wishlist/model"
	"bookshop-backend/internal/domains/wishlist/repository"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository) ServiceInterface {
	return &wishlistService{wishlistRepo: wishlistRepo}
}

func (s *wishlistService) List(ctx context.Context, userID uuid.UUID) ([]model.WishlistBook, error) {
	wishlist, err := s.wishlistRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.wishlistRepo.ListBooks(ctx, wishlist.ID)
}

// Toggle flips the book's membership: saved books are removed, others added.
// Returns the state after the flip.
func (s *wishlistService) Toggle(ctx context.Context, userID, bookID uuid.UUID) (*model.ToggleResult, error) {
	available, err := s.wishlistRepo.BookAvailable(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, model.ErrBookNotFound
	}

	wishlist, err := s.wishlistRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	saved, err := s.wishlistRepo.Contains(ctx, wishlist.ID, bookID)
	if err != nil {
		return nil, err
	}

	if saved {
		if err := s.wishlistRepo.RemoveBook(ctx, wishlist.ID, bookID); err != nil {
			return nil, err
		}
	} else {
		if err := s.wishlistRepo.AddBook(ctx, wishlist.ID, bookID); err != nil {
			return nil, err
		}
	}

	return &model.ToggleResult{BookID: bookID, InWishlist: !saved}, nil
}
