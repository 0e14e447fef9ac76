package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshop-backend/internal/domains/review/model"
	"bookshop-backend/pkg/database"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresRepository{pool: pool}
}

// Create inserts the review and rewrites the book's denormalized rating
// aggregate from a full re-scan of its reviews. Both statements run in one
// transaction so readers never see the insert without the recompute.
func (r *postgresRepository) Create(ctx context.Context, review *model.Review) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO reviews (id, book_id, user_id, rating, title, comment, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`

		_, err := tx.Exec(ctx, insert,
			review.ID, review.BookID, review.UserID,
			review.Rating, review.Title, review.Comment, review.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return model.ErrAlreadyReviewed
			}
			return fmt.Errorf("failed to insert review: %w", err)
		}

		recompute := `
			UPDATE books
			SET average_rating = COALESCE((
					SELECT ROUND(AVG(rating)::numeric, 2) FROM reviews WHERE book_id = $1
				), 0),
				total_reviews = (SELECT COUNT(*) FROM reviews WHERE book_id = $1),
				updated_at = NOW()
			WHERE id = $1`

		if _, err := tx.Exec(ctx, recompute, review.BookID); err != nil {
			return fmt.Errorf("failed to recompute rating: %w", err)
		}

		return nil
	})
}

func (r *postgresRepository) HasReview(ctx context.Context, bookID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE book_id = $1 AND user_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, bookID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check review: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) ListByBook(ctx context.Context, bookID uuid.UUID, limit int) ([]model.ReviewWithUser, error) {
	query := `
		SELECT r.id, r.book_id, r.user_id, r.rating, r.title, r.comment, r.created_at,
			u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.book_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, bookID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ReviewWithUser])
	if err != nil {
		return nil, fmt.Errorf("failed to collect reviews: %w", err)
	}

	return reviews, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.ReviewWithBook, error) {
	query := `
		SELECT r.id, r.book_id, r.user_id, r.rating, r.title, r.comment, r.created_at,
			b.title AS book_title, b.author AS book_author, b.cover_url AS book_cover
		FROM reviews r
		JOIN books b ON b.id = r.book_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list user reviews: %w", err)
	}

	reviews, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ReviewWithBook])
	if err != nil {
		return nil, fmt.Errorf("failed to collect user reviews: %w", err)
	}

	return reviews, nil
}

func (r *postgresRepository) BookExists(ctx context.Context, bookID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book: %w", err)
	}

	return exists, nil
}
