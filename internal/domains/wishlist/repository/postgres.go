package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshop-backend/internal/domains/wishlist/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) WishlistRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Wishlist, error) {
	insert := `
		INSERT INTO wishlists (id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, insert, uuid.New(), userID); err != nil {
		return nil, fmt.Errorf("failed to create wishlist: %w", err)
	}

	query := `SELECT id, user_id, created_at FROM wishlists WHERE user_id = $1`

	var wishlist model.Wishlist
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&wishlist.ID, &wishlist.UserID, &wishlist.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	return &wishlist, nil
}

func (r *postgresRepository) Contains(ctx context.Context, wishlistID, bookID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM wishlist_books WHERE wishlist_id = $1 AND book_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, wishlistID, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check wishlist: %w", err)
	}

	return exists, nil
}

// AddBook is idempotent; adding a book that is already saved is a no-op.
func (r *postgresRepository) AddBook(ctx context.Context, wishlistID, bookID uuid.UUID) error {
	query := `
		INSERT INTO wishlist_books (wishlist_id, book_id)
		VALUES ($1, $2)
		ON CONFLICT (wishlist_id, book_id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, wishlistID, bookID); err != nil {
		return fmt.Errorf("failed to add wishlist book: %w", err)
	}

	return nil
}

func (r *postgresRepository) RemoveBook(ctx context.Context, wishlistID, bookID uuid.UUID) error {
	query := `DELETE FROM wishlist_books WHERE wishlist_id = $1 AND book_id = $2`

	if _, err := r.pool.Exec(ctx, query, wishlistID, bookID); err != nil {
		return fmt.Errorf("failed to remove wishlist book: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListBooks(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistBook, error) {
	query := `
		SELECT wb.book_id, b.title, b.author, b.price, b.cover_url, b.is_available, wb.added_at
		FROM wishlist_books wb
		JOIN books b ON b.id = wb.book_id
		WHERE wb.wishlist_id = $1
		ORDER BY wb.added_at DESC`

	rows, err := r.pool.Query(ctx, query, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist books: %w", err)
	}

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.WishlistBook])
	if err != nil {
		return nil, fmt.Errorf("failed to collect wishlist books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) BookAvailable(ctx context.Context, bookID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1 AND is_available = true)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book: %w", err)
	}

	return exists, nil
}
