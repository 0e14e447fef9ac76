package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshop-backend/internal/domains/book/model"
)

const bookColumns = `b.id, b.title, b.author, b.isbn, b.category_id, b.price, b.original_price,
		b.description, b.cover_url, b.publisher, b.publication_date, b.pages, b.language,
		b.condition, b.stock_quantity, b.is_featured, b.is_available,
		b.average_rating, b.total_reviews, b.created_at, b.updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) BookRepository {
	return &postgresRepository{pool: pool}
}

// likeEscaper neutralizes LIKE metacharacters in user input so a search
// for "100%" matches the literal text instead of acting as a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// buildSearchQuery assembles the catalog search statement. Filters are
// conjunctive; the text query matches title, author, ISBN or description.
func buildSearchQuery(q model.SearchQuery) (string, []interface{}) {
	var (
		conditions = []string{"b.is_available = true"}
		args       []interface{}
		argIndex   = 1
	)

	if q.Query != "" {
		pattern := likePattern(q.Query)
		conditions = append(conditions, fmt.Sprintf(
			"(b.title ILIKE $%d OR b.author ILIKE $%d OR b.isbn ILIKE $%d OR b.description ILIKE $%d)",
			argIndex, argIndex, argIndex, argIndex))
		args = append(args, pattern)
		argIndex++
	}

	if q.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("b.category_id = $%d", argIndex))
		args = append(args, *q.CategoryID)
		argIndex++
	}

	if q.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("b.price >= $%d", argIndex))
		args = append(args, *q.MinPrice)
		argIndex++
	}

	if q.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("b.price <= $%d", argIndex))
		args = append(args, *q.MaxPrice)
		argIndex++
	}

	query := fmt.Sprintf(`SELECT %s FROM books b WHERE %s ORDER BY %s`,
		bookColumns, strings.Join(conditions, " AND "), q.SortBy.OrderClause())

	return query, args
}

func (r *postgresRepository) Search(ctx context.Context, q model.SearchQuery) ([]model.Book, error) {
	query, args := buildSearchQuery(q)
	return r.queryBooks(ctx, query, args...)
}

func (r *postgresRepository) ListFeatured(ctx context.Context, limit int) ([]model.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM books b
		WHERE b.is_available = true AND b.is_featured = true
		ORDER BY b.created_at DESC
		LIMIT $1`, bookColumns)

	return r.queryBooks(ctx, query, limit)
}

func (r *postgresRepository) ListTopRated(ctx context.Context, limit int, threshold float64) ([]model.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM books b
		WHERE b.is_available = true AND b.average_rating >= $1
		ORDER BY b.average_rating DESC, b.total_reviews DESC
		LIMIT $2`, bookColumns)

	return r.queryBooks(ctx, query, threshold, limit)
}

func (r *postgresRepository) ListLatest(ctx context.Context, limit int) ([]model.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM books b
		WHERE b.is_available = true
		ORDER BY b.created_at DESC
		LIMIT $1`, bookColumns)

	return r.queryBooks(ctx, query, limit)
}

func (r *postgresRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, excludeID *uuid.UUID, limit int) ([]model.Book, error) {
	var (
		conditions = []string{"b.is_available = true", "b.category_id = $1"}
		args       = []interface{}{categoryID}
		argIndex   = 2
	)

	if excludeID != nil {
		conditions = append(conditions, fmt.Sprintf("b.id != $%d", argIndex))
		args = append(args, *excludeID)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s FROM books b
		WHERE %s
		ORDER BY b.created_at DESC
		LIMIT $%d`, bookColumns, strings.Join(conditions, " AND "), argIndex)
	args = append(args, limit)

	return r.queryBooks(ctx, query, args...)
}

// ListRecommended surfaces available books from the categories the user has
// shown interest in, via their three most recent reviews and their wishlist.
// Books already on the wishlist are excluded. Returns an empty slice when the
// user has no category signal yet.
func (r *postgresRepository) ListRecommended(ctx context.Context, userID uuid.UUID, limit int) ([]model.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM books b
		WHERE b.is_available = true
		  AND b.category_id IN (
			SELECT rb.category_id FROM (
				SELECT b2.category_id
				FROM reviews r
				JOIN books b2 ON b2.id = r.book_id
				WHERE r.user_id = $1 AND b2.category_id IS NOT NULL
				ORDER BY r.created_at DESC
				LIMIT 3
			) rb
			UNION
			SELECT b3.category_id
			FROM wishlist_books wb
			JOIN wishlists w ON w.id = wb.wishlist_id
			JOIN books b3 ON b3.id = wb.book_id
			WHERE w.user_id = $1 AND b3.category_id IS NOT NULL
		  )
		  AND b.id NOT IN (
			SELECT wb.book_id
			FROM wishlist_books wb
			JOIN wishlists w ON w.id = wb.wishlist_id
			WHERE w.user_id = $1
		  )
		ORDER BY b.average_rating DESC, b.created_at DESC
		LIMIT $2`, bookColumns)

	return r.queryBooks(ctx, query, userID, limit)
}

func (r *postgresRepository) GetRecentReviews(ctx context.Context, bookID uuid.UUID, limit int) ([]model.ReviewSummary, error) {
	query := `
		SELECT r.id, r.rating, r.title, r.comment, u.username, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.book_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, bookID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	reviews, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ReviewSummary])
	if err != nil {
		return nil, fmt.Errorf("failed to collect reviews: %w", err)
	}

	return reviews, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books b WHERE b.id = $1`, bookColumns)

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect book: %w", err)
	}

	return &book, nil
}

func (r *postgresRepository) AdminList(ctx context.Context, q model.AdminListQuery) ([]model.Book, error) {
	var (
		conditions []string
		args       []interface{}
		argIndex   = 1
	)

	if q.Search != "" {
		conditions = append(conditions, fmt.Sprintf("b.title ILIKE $%d", argIndex))
		args = append(args, likePattern(q.Search))
		argIndex++
	}

	if q.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("b.category_id = $%d", argIndex))
		args = append(args, *q.CategoryID)
		argIndex++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM books b %s ORDER BY b.created_at DESC`, bookColumns, where)

	return r.queryBooks(ctx, query, args...)
}

func (r *postgresRepository) ListRecent(ctx context.Context, limit int) ([]model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books b ORDER BY b.created_at DESC LIMIT $1`, bookColumns)
	return r.queryBooks(ctx, query, limit)
}

func (r *postgresRepository) Counts(ctx context.Context) (total, featured, outOfStock int, err error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE is_featured),
			COUNT(*) FILTER (WHERE stock_quantity = 0)
		FROM books`

	if err := r.pool.QueryRow(ctx, query).Scan(&total, &featured, &outOfStock); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count books: %w", err)
	}

	return total, featured, outOfStock, nil
}

func (r *postgresRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
		INSERT INTO books (id, title, author, isbn, category_id, price, original_price,
			description, cover_url, publisher, publication_date, pages, language,
			condition, stock_quantity, is_featured, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.pool.Exec(ctx, query,
		book.ID, book.Title, book.Author, book.ISBN, book.CategoryID, book.Price, book.OriginalPrice,
		book.Description, book.CoverURL, book.Publisher, book.PublicationDate, book.Pages, book.Language,
		book.Condition, book.StockQuantity, book.IsFeatured, book.IsAvailable, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, book *model.Book) error {
	query := `
		UPDATE books
		SET title = $1, author = $2, isbn = $3, category_id = $4, price = $5,
			original_price = $6, description = $7, cover_url = $8, publisher = $9,
			publication_date = $10, pages = $11, language = $12, condition = $13,
			stock_quantity = $14, is_featured = $15, is_available = $16, updated_at = NOW()
		WHERE id = $17
		RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		book.Title, book.Author, book.ISBN, book.CategoryID, book.Price,
		book.OriginalPrice, book.Description, book.CoverURL, book.Publisher,
		book.PublicationDate, book.Pages, book.Language, book.Condition,
		book.StockQuantity, book.IsFeatured, book.IsAvailable, book.ID,
	).Scan(&book.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrBookNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) CheckISBNExists(ctx context.Context, isbn string, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`
	args := []interface{}{isbn}

	if excludeID != nil {
		query = `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1 AND id != $2)`
		args = append(args, *excludeID)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check isbn: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, fmt.Errorf("failed to collect books: %w", err)
	}

	return books, nil
}
