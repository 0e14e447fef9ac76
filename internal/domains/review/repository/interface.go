package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/review/model"
)

// ReviewRepository is the data access contract for reviews.
type ReviewRepository interface {
	// Create inserts the review and recomputes the book's rating aggregate
	// in the same transaction.
	Create(ctx context.Context, review *model.Review) error

	HasReview(ctx context.Context, bookID, userID uuid.UUID) (bool, error)
	ListByBook(ctx context.Context, bookID uuid.UUID, limit int) ([]model.ReviewWithUser, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.ReviewWithBook, error)
	BookExists(ctx context.Context, bookID uuid.UUID) (bool, error)
}
