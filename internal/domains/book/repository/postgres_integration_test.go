//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshop-backend/internal/domains/book/model"
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

func containsBook(books []model.Book, id uuid.UUID) bool {
	for _, b := range books {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Text search runs through ILIKE, so "dun" must find "Dune".
func TestSearch_CaseInsensitive(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	suffix := uuid.NewString()
	duneID := insertBook(t, pool, "Dune "+suffix)
	otherID := insertBook(t, pool, "Foundation "+suffix)

	books, err := repo.Search(ctx, model.SearchQuery{Query: "dun"})
	require.NoError(t, err)

	assert.True(t, containsBook(books, duneID))
	assert.False(t, containsBook(books, otherID))
}

// A literal percent sign in the query must not act as a wildcard.
func TestSearch_LiteralPercent(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	suffix := uuid.NewString()
	percentID := insertBook(t, pool, "100% Gopher "+suffix)
	plainID := insertBook(t, pool, "100 Gophers "+suffix)

	books, err := repo.Search(ctx, model.SearchQuery{Query: "100%"})
	require.NoError(t, err)

	assert.True(t, containsBook(books, percentID))
	assert.False(t, containsBook(books, plainID))
}
