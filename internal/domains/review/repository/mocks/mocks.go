package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bookshop-backend/internal/domains/review/model"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) HasReview(ctx context.Context, bookID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, bookID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListByBook(ctx context.Context, bookID uuid.UUID, limit int) ([]model.ReviewWithUser, error) {
	args := m.Called(ctx, bookID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReviewWithUser), args.Error(1)
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.ReviewWithBook, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReviewWithBook), args.Error(1)
}

func (m *MockReviewRepository) BookExists(ctx context.Context, bookID uuid.UUID) (bool, error) {
	args := m.Called(ctx, bookID)
	return args.Bool(0), args.Error(1)
}
