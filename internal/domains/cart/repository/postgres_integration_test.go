//go:build integration

package repository

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

// Adding the same book twice must land as one row with quantity 2; the
// upsert, not application code, enforces the (cart, book) uniqueness.
func TestAddItem_SameBookIncrementsQuantity(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	userID := insertUser(t, pool)
	bookID := insertBook(t, pool, "Cart Upsert "+uuid.NewString())

	cart, err := repo.GetOrCreate(ctx, userID)
	require.NoError(t, err)

	first, err := repo.AddItem(ctx, cart.ID, bookID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := repo.AddItem(ctx, cart.ID, bookID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same row, not a duplicate")
	assert.Equal(t, 2, second.Quantity)

	var rows int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM cart_items WHERE cart_id = $1 AND book_id = $2`,
		cart.ID, bookID).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	userID := insertUser(t, pool)

	first, err := repo.GetOrCreate(ctx, userID)
	require.NoError(t, err)

	second, err := repo.GetOrCreate(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}
