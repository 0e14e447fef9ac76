package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/book/model"
)

// BookRepository is the data access contract for books.
type BookRepository interface {
	// Catalog reads. All of these only see available books.
	Search(ctx context.Context, q model.SearchQuery) ([]model.Book, error)
	ListFeatured(ctx context.Context, limit int) ([]model.Book, error)
	ListTopRated(ctx context.Context, limit int, threshold float64) ([]model.Book, error)
	ListLatest(ctx context.Context, limit int) ([]model.Book, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, excludeID *uuid.UUID, limit int) ([]model.Book, error)
	ListRecommended(ctx context.Context, userID uuid.UUID, limit int) ([]model.Book, error)
	GetRecentReviews(ctx context.Context, bookID uuid.UUID, limit int) ([]model.ReviewSummary, error)

	// Admin reads see unavailable books as well.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	AdminList(ctx context.Context, q model.AdminListQuery) ([]model.Book, error)
	ListRecent(ctx context.Context, limit int) ([]model.Book, error)
	Counts(ctx context.Context) (total, featured, outOfStock int, err error)

	// Writes.
	Create(ctx context.Context, book *model.Book) error
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	CheckISBNExists(ctx context.Context, isbn string, excludeID *uuid.UUID) (bool, error)
}
