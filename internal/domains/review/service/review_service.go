package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/review/model"
	"bookshop-backend/internal/domains/review/repository"
)

const (
	bookReviewsLimit = 10
	userReviewsLimit = 10
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ServiceInterface {
	return &reviewService{reviewRepo: reviewRepo}
}

// Submit records a review for a book. The pre-check keeps the common
// duplicate path friendly; the unique constraint catches the race.
func (s *reviewService) Submit(ctx context.Context, bookID, userID uuid.UUID, req model.CreateReviewRequest) (*model.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.BookExists(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrBookNotFound
	}

	reviewed, err := s.reviewRepo.HasReview(ctx, bookID, userID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, model.ErrAlreadyReviewed
	}

	review := &model.Review{
		ID:        uuid.New(),
		BookID:    bookID,
		UserID:    userID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, model.ErrAlreadyReviewed) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

func (s *reviewService) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.ReviewWithUser, error) {
	exists, err := s.reviewRepo.BookExists(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrBookNotFound
	}

	return s.reviewRepo.ListByBook(ctx, bookID, bookReviewsLimit)
}

func (s *reviewService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ReviewWithBook, error) {
	return s.reviewRepo.ListByUser(ctx, userID, userReviewsLimit)
}
