package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookshop-backend/internal/domains/review/model"
	"bookshop-backend/internal/domains/review/repository/mocks"
)

func validReview() model.CreateReviewRequest {
	return model.CreateReviewRequest{Rating: 4, Comment: "Great read"}
}

func TestSubmit_Success(t *testing.T) {
	repo := new(mocks.MockReviewRepository)
	svc := NewReviewService(repo)

	bookID, userID := uuid.New(), uuid.New()
	repo.On("BookExists", mock.Anything, bookID).Return(true, nil)
	repo.On("HasReview", mock.Anything, bookID, userID).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

	review, err := svc.Submit(context.Background(), bookID, userID, validReview())

	require.NoError(t, err)
	assert.Equal(t, bookID, review.BookID)
	assert.Equal(t, userID, review.UserID)
	assert.Equal(t, 4, review.Rating)
	assert.NotEqual(t, uuid.Nil, review.ID)
}

func TestSubmit_RatingOutOfRange(t *testing.T) {
	repo := new(mocks.MockReviewRepository)
	svc := NewReviewService(repo)

	for _, rating := range []int{0, -1, 6} {
		req := validReview()
		req.Rating = rating

		_, err := svc.Submit(context.Background(), uuid.New(), uuid.New(), req)
		assert.Error(t, err, "rating %d", rating)
	}

	repo.AssertNotCalled(t, "Create")
}

func TestSubmit_BookMissing(t *testing.T) {
	repo := new(mocks.MockReviewRepository)
	svc := NewReviewService(repo)

	bookID := uuid.New()
	repo.On("BookExists", mock.Anything, bookID).Return(false, nil)

	_, err := svc.Submit(context.Background(), bookID, uuid.New(), validReview())

	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestSubmit_Duplicate_PreCheck(t *testing.T) {
	repo := new(mocks.MockReviewRepository)
	svc := NewReviewService(repo)

	bookID, userID := uuid.New(), uuid.New()
	repo.On("BookExists", mock.Anything, bookID).Return(true, nil)
	repo.On("HasReview", mock.Anything, bookID, userID).Return(true, nil)

	_, err := svc.Submit(context.Background(), bookID, userID, validReview())

	assert.ErrorIs(t, err, model.ErrAlreadyReviewed)
	repo.AssertNotCalled(t, "Create")
}

func TestSubmit_Duplicate_RaceCaughtByConstraint(t *testing.T) {
	repo := new(mocks.MockReviewRepository)
	svc := NewReviewService(repo)

	bookID, userID := uuid.New(), uuid.New()
	repo.On("BookExists", mock.Anything, bookID).Return(true, nil)
	// pre-check misses the concurrent insert
	repo.On("HasReview", mock.Anything, bookID, userID).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(model.ErrAlreadyReviewed)

	_, err := svc.Submit(context.Background(), bookID, userID, validReview())

	assert.ErrorIs(t, err, model.ErrAlreadyReviewed)
}

func TestListByBook_BookMissing(t *testing.T) {
	repo := new(mocks.MockReviewRepository)
	svc := NewReviewService(repo)

	bookID := uuid.New()
	repo.On("BookExists", mock.Anything, bookID).Return(false, nil)

	_, err := svc.ListByBook(context.Background(), bookID)

	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
