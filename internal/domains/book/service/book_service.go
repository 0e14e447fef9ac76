package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/book/model"
	"bookshop-backend/internal/domains/book/repository"
	categoryrepo "bookshop-backend/internal/domains/category/repository"
	"bookshop-backend/pkg/cache"
	"bookshop-backend/pkg/logger"
)

const (
	featuredLimit      = 10
	topRatedLimit      = 10
	topRatedThreshold  = 4.0
	latestLimit        = 10
	relatedLimit       = 4
	recommendedLimit   = 6
	recentReviewsLimit = 5
	statsRecentLimit   = 5

	cacheKeyFeatured = "books:featured"
	cacheKeyTopRated = "books:top_rated"
	cacheTTL         = 15 * time.Minute
)

type bookService struct {
	bookRepo     repository.BookRepository
	categoryRepo categoryrepo.CategoryRepository
	cache        cache.Cache
}

func NewBookService(bookRepo repository.BookRepository, categoryRepo categoryrepo.CategoryRepository, c cache.Cache) ServiceInterface {
	return &bookService{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		cache:        c,
	}
}

func (s *bookService) Search(ctx context.Context, q model.SearchQuery) ([]model.Book, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	return s.bookRepo.Search(ctx, q)
}

// GetDetail returns the book page payload: the book, display helpers, recent
// reviews and related books from the same category.
func (s *bookService) GetDetail(ctx context.Context, id uuid.UUID) (*model.BookDetail, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.bookRepo.GetRecentReviews(ctx, id, recentReviewsLimit)
	if err != nil {
		return nil, err
	}

	var related []model.Book
	if book.CategoryID != nil {
		related, err = s.bookRepo.ListByCategory(ctx, *book.CategoryID, &book.ID, relatedLimit)
		if err != nil {
			return nil, err
		}
	}

	return &model.BookDetail{
		Book:         *book,
		OnSale:       book.IsOnSale(),
		DiscountPct:  book.DiscountPercentage(),
		InStock:      book.IsInStock(),
		Stars:        book.Stars(),
		Reviews:      reviews,
		RelatedBooks: related,
	}, nil
}

func (s *bookService) ListFeatured(ctx context.Context) ([]model.Book, error) {
	return s.cached(ctx, cacheKeyFeatured, func(ctx context.Context) ([]model.Book, error) {
		return s.bookRepo.ListFeatured(ctx, featuredLimit)
	})
}

func (s *bookService) ListTopRated(ctx context.Context) ([]model.Book, error) {
	return s.cached(ctx, cacheKeyTopRated, func(ctx context.Context) ([]model.Book, error) {
		return s.bookRepo.ListTopRated(ctx, topRatedLimit, topRatedThreshold)
	})
}

func (s *bookService) ListLatest(ctx context.Context) ([]model.Book, error) {
	return s.bookRepo.ListLatest(ctx, latestLimit)
}

// ListRecommended picks available books from the categories the user has
// reviewed or wishlisted recently. Users with no history yet get the
// featured list instead.
func (s *bookService) ListRecommended(ctx context.Context, userID uuid.UUID) ([]model.Book, error) {
	books, err := s.bookRepo.ListRecommended(ctx, userID, recommendedLimit)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		featured, err := s.ListFeatured(ctx)
		if err != nil {
			return nil, err
		}
		if len(featured) > recommendedLimit {
			featured = featured[:recommendedLimit]
		}
		return featured, nil
	}

	return books, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

func (s *bookService) AdminList(ctx context.Context, q model.AdminListQuery) ([]model.Book, error) {
	return s.bookRepo.AdminList(ctx, q)
}

func (s *bookService) Create(ctx context.Context, req model.BookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.ISBN != nil {
		exists, err := s.bookRepo.CheckISBNExists(ctx, *req.ISBN, nil)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, model.ErrISBNExists
		}
	}

	book := req.ToBook()
	book.ID = uuid.New()
	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	s.invalidateCache(ctx)

	return book, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req model.BookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ISBN != nil {
		exists, err := s.bookRepo.CheckISBNExists(ctx, *req.ISBN, &id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, model.ErrISBNExists
		}
	}

	book := req.ToBook()
	book.ID = id
	book.AverageRating = existing.AverageRating
	book.TotalReviews = existing.TotalReviews
	book.CreatedAt = existing.CreatedAt

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	s.invalidateCache(ctx)

	return book, nil
}

// Delete removes a book; cascades take its reviews, cart and wishlist rows
// with it. Returns the deleted book's title.
func (s *bookService) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.bookRepo.Delete(ctx, id); err != nil {
		return "", err
	}

	s.invalidateCache(ctx)

	return book.Title, nil
}

func (s *bookService) Stats(ctx context.Context) (*model.CatalogStats, error) {
	total, featured, outOfStock, err := s.bookRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.bookRepo.ListRecent(ctx, statsRecentLimit)
	if err != nil {
		return nil, err
	}

	withCounts, err := s.categoryRepo.ListWithBookCounts(ctx)
	if err != nil {
		return nil, err
	}

	counts := make([]model.CategoryCount, 0, len(withCounts))
	for _, c := range withCounts {
		counts = append(counts, model.CategoryCount{
			ID:        c.ID,
			Name:      c.Name,
			BookCount: c.BookCount,
		})
	}

	return &model.CatalogStats{
		TotalBooks:      total,
		TotalCategories: categories,
		FeaturedBooks:   featured,
		OutOfStock:      outOfStock,
		RecentBooks:     recent,
		CategoryCounts:  counts,
	}, nil
}

// cached wraps a list query with a read-through cache. Cache failures are
// logged and the query falls through to the database.
func (s *bookService) cached(ctx context.Context, key string, load func(context.Context) ([]model.Book, error)) ([]model.Book, error) {
	var books []model.Book
	hit, err := s.cache.Get(ctx, key, &books)
	if err != nil {
		logger.Warn("cache get failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
	if hit {
		return books, nil
	}

	books, err = load(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, books, cacheTTL); err != nil {
		logger.Warn("cache set failed", map[string]interface{}{"key": key, "error": err.Error()})
	}

	return books, nil
}

func (s *bookService) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "books:*"); err != nil {
		logger.Warn("cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
