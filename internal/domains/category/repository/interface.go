package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/category/model"
)

// CategoryRepository is the data access contract for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	ListWithBookCounts(ctx context.Context) ([]model.CategoryWithCount, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
