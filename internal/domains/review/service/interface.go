package service

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/review/model"
)

// ServiceInterface is the review business logic contract.
type ServiceInterface interface {
	Submit(ctx context.Context, bookID, userID uuid.UUID, req model.CreateReviewRequest) (*model.Review, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.ReviewWithUser, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ReviewWithBook, error)
}
