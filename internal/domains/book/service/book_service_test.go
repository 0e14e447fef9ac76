package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookshop-backend/internal/domains/book/model"
	bookmocks "bookshop-backend/internal/domains/book/repository/mocks"
	categorymodel "bookshop-backend/internal/domains/category/model"
	categorymocks "bookshop-backend/internal/domains/category/repository/mocks"
	cachemocks "bookshop-backend/pkg/cache/mocks"
)

func newTestService() (*bookmocks.MockBookRepository, *categorymocks.MockCategoryRepository, *cachemocks.MockCache, ServiceInterface) {
	bookRepo := new(bookmocks.MockBookRepository)
	categoryRepo := new(categorymocks.MockCategoryRepository)
	c := new(cachemocks.MockCache)
	return bookRepo, categoryRepo, c, NewBookService(bookRepo, categoryRepo, c)
}

func validRequest() model.BookRequest {
	return model.BookRequest{
		Title:         "Dune",
		Author:        "Frank Herbert",
		Price:         12.50,
		Condition:     "new",
		StockQuantity: 3,
		IsAvailable:   true,
	}
}

func TestListFeatured_CacheHit(t *testing.T) {
	bookRepo, _, c, svc := newTestService()

	cached := []model.Book{{ID: uuid.New(), Title: "Cached"}}
	c.On("Get", mock.Anything, cacheKeyFeatured, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*[]model.Book)
			*dest = cached
		}).
		Return(true, nil)

	books, err := svc.ListFeatured(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, books)
	bookRepo.AssertNotCalled(t, "ListFeatured")
}

func TestListFeatured_CacheMiss(t *testing.T) {
	bookRepo, _, c, svc := newTestService()

	fromDB := []model.Book{{ID: uuid.New(), Title: "From DB"}}
	c.On("Get", mock.Anything, cacheKeyFeatured, mock.Anything).Return(false, nil)
	bookRepo.On("ListFeatured", mock.Anything, featuredLimit).Return(fromDB, nil)
	c.On("Set", mock.Anything, cacheKeyFeatured, fromDB, cacheTTL).Return(nil)

	books, err := svc.ListFeatured(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fromDB, books)
	c.AssertExpectations(t)
}

func TestSearch_RejectsInvalidSortKey(t *testing.T) {
	bookRepo, _, _, svc := newTestService()

	_, err := svc.Search(context.Background(), model.SearchQuery{SortBy: "author"})

	assert.Error(t, err)
	bookRepo.AssertNotCalled(t, "Search")
}

func TestCreate_DuplicateISBN(t *testing.T) {
	bookRepo, _, _, svc := newTestService()

	req := validRequest()
	isbn := "9780134190440"
	req.ISBN = &isbn

	bookRepo.On("CheckISBNExists", mock.Anything, isbn, (*uuid.UUID)(nil)).Return(true, nil)

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, model.ErrISBNExists)
	bookRepo.AssertNotCalled(t, "Create")
}

func TestCreate_InvalidatesCache(t *testing.T) {
	bookRepo, _, c, svc := newTestService()

	bookRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Book")).Return(nil)
	c.On("DeletePattern", mock.Anything, "books:*").Return(nil)

	book, err := svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, book.ID)
	c.AssertCalled(t, "DeletePattern", mock.Anything, "books:*")
}

func TestDelete_ReturnsTitle(t *testing.T) {
	bookRepo, _, c, svc := newTestService()

	id := uuid.New()
	bookRepo.On("GetByID", mock.Anything, id).Return(&model.Book{ID: id, Title: "Dune"}, nil)
	bookRepo.On("Delete", mock.Anything, id).Return(nil)
	c.On("DeletePattern", mock.Anything, "books:*").Return(nil)

	title, err := svc.Delete(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Dune", title)
}

func TestGetDetail_ServesUnavailableBooks(t *testing.T) {
	bookRepo, _, _, svc := newTestService()

	id := uuid.New()
	bookRepo.On("GetByID", mock.Anything, id).
		Return(&model.Book{ID: id, Title: "Out of print", IsAvailable: false}, nil)
	bookRepo.On("GetRecentReviews", mock.Anything, id, recentReviewsLimit).
		Return([]model.ReviewSummary{}, nil)

	detail, err := svc.GetDetail(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Out of print", detail.Book.Title)
	assert.False(t, detail.Book.IsAvailable)
}

func TestListRecommended_UsesCategorySignal(t *testing.T) {
	bookRepo, _, c, svc := newTestService()

	userID := uuid.New()
	picks := []model.Book{{ID: uuid.New(), Title: "Dune Messiah"}}
	bookRepo.On("ListRecommended", mock.Anything, userID, recommendedLimit).Return(picks, nil)

	books, err := svc.ListRecommended(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, picks, books)
	bookRepo.AssertNotCalled(t, "ListFeatured")
	c.AssertNotCalled(t, "Get")
}

func TestListRecommended_FallsBackToFeatured(t *testing.T) {
	bookRepo, _, c, svc := newTestService()

	userID := uuid.New()
	featured := make([]model.Book, featuredLimit)
	for i := range featured {
		featured[i] = model.Book{ID: uuid.New()}
	}

	bookRepo.On("ListRecommended", mock.Anything, userID, recommendedLimit).Return([]model.Book{}, nil)
	c.On("Get", mock.Anything, cacheKeyFeatured, mock.Anything).Return(false, nil)
	bookRepo.On("ListFeatured", mock.Anything, featuredLimit).Return(featured, nil)
	c.On("Set", mock.Anything, cacheKeyFeatured, featured, cacheTTL).Return(nil)

	books, err := svc.ListRecommended(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, books, recommendedLimit, "fallback is capped at the recommendation size")
	assert.Equal(t, featured[:recommendedLimit], books)
}

func TestGetDetail_ComposesRelatedAndReviews(t *testing.T) {
	bookRepo, _, _, svc := newTestService()

	id := uuid.New()
	categoryID := uuid.New()
	op := decimal.NewFromFloat(20)
	book := &model.Book{
		ID:            id,
		Title:         "Dune",
		CategoryID:    &categoryID,
		Price:         decimal.NewFromFloat(10),
		OriginalPrice: &op,
		StockQuantity: 2,
		IsAvailable:   true,
		AverageRating: decimal.NewFromFloat(4.5),
	}
	reviews := []model.ReviewSummary{{ID: uuid.New(), Rating: 5, Username: "ana"}}
	related := []model.Book{{ID: uuid.New(), Title: "Dune Messiah"}}

	bookRepo.On("GetByID", mock.Anything, id).Return(book, nil)
	bookRepo.On("GetRecentReviews", mock.Anything, id, recentReviewsLimit).Return(reviews, nil)
	bookRepo.On("ListByCategory", mock.Anything, categoryID, &id, relatedLimit).Return(related, nil)

	detail, err := svc.GetDetail(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, detail.OnSale)
	assert.Equal(t, 50, detail.DiscountPct)
	assert.True(t, detail.InStock)
	assert.Equal(t, model.RatingStars{Full: 4, Half: 1, Empty: 0}, detail.Stars)
	assert.Equal(t, reviews, detail.Reviews)
	assert.Equal(t, related, detail.RelatedBooks)
}

func TestStats_Composition(t *testing.T) {
	bookRepo, categoryRepo, _, svc := newTestService()

	recent := []model.Book{{ID: uuid.New()}}
	counts := []categorymodel.CategoryWithCount{
		{Category: categorymodel.Category{ID: uuid.New(), Name: "SF"}, BookCount: 7},
	}

	bookRepo.On("Counts", mock.Anything).Return(42, 5, 3, nil)
	categoryRepo.On("Count", mock.Anything).Return(6, nil)
	bookRepo.On("ListRecent", mock.Anything, statsRecentLimit).Return(recent, nil)
	categoryRepo.On("ListWithBookCounts", mock.Anything).Return(counts, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalBooks)
	assert.Equal(t, 6, stats.TotalCategories)
	assert.Equal(t, 5, stats.FeaturedBooks)
	assert.Equal(t, 3, stats.OutOfStock)
	assert.Equal(t, recent, stats.RecentBooks)
	require.Len(t, stats.CategoryCounts, 1)
	assert.Equal(t, "SF", stats.CategoryCounts[0].Name)
	assert.Equal(t, 7, stats.CategoryCounts[0].BookCount)
}
