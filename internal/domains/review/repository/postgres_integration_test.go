//go:build integration

package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshop-backend/internal/domains/review/model"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func insertUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, password_hash) VALUES ($1, $2, $3, 'x')`,
		id, fmt.Sprintf("%s@test.local", id), id.String())
	require.NoError(t, err)
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	})

	return id
}

func insertBook(t *testing.T, pool *pgxpool.Pool, title string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO books (id, title, author, price) VALUES ($1, $2, 'Tester', 9.99)`,
		id, title)
	require.NoError(t, err)
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM books WHERE id = $1`, id)
	})

	return id
}

// The insert and the aggregate rewrite run in one transaction, so the book
// row must reflect all reviews the moment Create returns.
func TestCreate_RecomputesBookRating(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	bookID := insertBook(t, pool, "Rating Recompute "+uuid.NewString())

	for _, rating := range []int{4, 5, 3} {
		review := &model.Review{
			ID:        uuid.New(),
			BookID:    bookID,
			UserID:    insertUser(t, pool),
			Rating:    rating,
			Comment:   "solid read",
			CreatedAt: time.Now(),
		}
		require.NoError(t, repo.Create(ctx, review))
	}

	var avg string
	var total int
	err := pool.QueryRow(ctx,
		`SELECT average_rating::text, total_reviews FROM books WHERE id = $1`, bookID,
	).Scan(&avg, &total)
	require.NoError(t, err)

	assert.Equal(t, "4.00", avg, "average of 4, 5, 3 rounded to two decimals")
	assert.Equal(t, 3, total)
}

func TestCreate_SecondReviewSameUserRejected(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	bookID := insertBook(t, pool, "One Review Each "+uuid.NewString())
	userID := insertUser(t, pool)

	first := &model.Review{
		ID: uuid.New(), BookID: bookID, UserID: userID,
		Rating: 5, Comment: "loved it", CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &model.Review{
		ID: uuid.New(), BookID: bookID, UserID: userID,
		Rating: 1, Comment: "changed my mind", CreatedAt: time.Now(),
	}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, model.ErrAlreadyReviewed)

	var total int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT total_reviews FROM books WHERE id = $1`, bookID).Scan(&total))
	assert.Equal(t, 1, total, "rejected insert must not disturb the aggregate")
}
