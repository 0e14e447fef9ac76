package service

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/book/model"
)

// ServiceInterface is the book business logic contract.
type ServiceInterface interface {
	// Public catalog.
	Search(ctx context.Context, q model.SearchQuery) ([]model.Book, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*model.BookDetail, error)
	ListFeatured(ctx context.Context) ([]model.Book, error)
	ListTopRated(ctx context.Context) ([]model.Book, error)
	ListLatest(ctx context.Context) ([]model.Book, error)

	// Authenticated catalog.
	ListRecommended(ctx context.Context, userID uuid.UUID) ([]model.Book, error)

	// Admin.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	AdminList(ctx context.Context, q model.AdminListQuery) ([]model.Book, error)
	Create(ctx context.Context, req model.BookRequest) (*model.Book, error)
	Update(ctx context.Context, id uuid.UUID, req model.BookRequest) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) (deletedTitle string, err error)
	Stats(ctx context.Context) (*model.CatalogStats, error)
}
