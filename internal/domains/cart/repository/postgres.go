package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshop-backend/internal/domains/cart/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) CartRepository {
	return &postgresRepository{pool: pool}
}

// GetOrCreate is idempotent: the insert is a no-op when the user already has
// a cart, and the follow-up select returns whichever row won.
func (r *postgresRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	insert := `
		INSERT INTO carts (id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, insert, uuid.New(), userID); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	query := `SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`

	var cart model.Cart
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

// AddItem is a single atomic upsert: concurrent adds for the same book both
// land as quantity increments, never as lost updates.
func (r *postgresRepository) AddItem(ctx context.Context, cartID, bookID uuid.UUID) (*model.CartItem, error) {
	query := `
		INSERT INTO cart_items (id, cart_id, book_id, quantity)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (cart_id, book_id)
		DO UPDATE SET quantity = cart_items.quantity + 1
		RETURNING id, cart_id, book_id, quantity, added_at`

	var item model.CartItem
	err := r.pool.QueryRow(ctx, query, uuid.New(), cartID, bookID).Scan(
		&item.ID, &item.CartID, &item.BookID, &item.Quantity, &item.AddedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return &item, nil
}

func (r *postgresRepository) GetItemsWithBooks(ctx context.Context, cartID uuid.UUID) ([]model.CartItemWithBook, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.book_id, ci.quantity, ci.added_at,
			b.title, b.author, b.price, b.cover_url, b.is_available
		FROM cart_items ci
		JOIN books b ON b.id = ci.book_id
		WHERE ci.cart_id = $1
		ORDER BY ci.added_at DESC`

	rows, err := r.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.CartItemWithBook])
	if err != nil {
		return nil, fmt.Errorf("failed to collect cart items: %w", err)
	}

	return items, nil
}

func (r *postgresRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	query := `UPDATE cart_items SET quantity = $1 WHERE id = $2 AND cart_id = $3`

	result, err := r.pool.Exec(ctx, query, quantity, itemID, cartID)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCartItemNotFound
	}

	return nil
}

func (r *postgresRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`, itemID, cartID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCartItemNotFound
	}

	return nil
}

func (r *postgresRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

func (r *postgresRepository) BookAvailable(ctx context.Context, bookID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1 AND is_available = true)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book: %w", err)
	}

	return exists, nil
}
