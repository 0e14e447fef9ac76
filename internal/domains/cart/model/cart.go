package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is a user's shopping cart. Each user has exactly one.
type Cart struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CartItem is one book line in a cart.
type CartItem struct {
	ID       uuid.UUID `json:"id" db:"id"`
	CartID   uuid.UUID `json:"cart_id" db:"cart_id"`
	BookID   uuid.UUID `json:"book_id" db:"book_id"`
	Quantity int       `json:"quantity" db:"quantity"`
	AddedAt  time.Time `json:"added_at" db:"added_at"`
}

// CartItemWithBook is a cart line joined with the current book data. Prices
// come from the book row at read time, not from when the item was added.
type CartItemWithBook struct {
	CartItem
	Title       string          `json:"title" db:"title"`
	Author      string          `json:"author" db:"author"`
	Price       decimal.Decimal `json:"price" db:"price"`
	CoverURL    *string         `json:"cover_url" db:"cover_url"`
	IsAvailable bool            `json:"is_available" db:"is_available"`
}

// Subtotal is quantity times the book's current price.
func (i CartItemWithBook) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartResponse is the cart payload: lines plus computed totals.
type CartResponse struct {
	Cart       Cart               `json:"cart"`
	Items      []CartItemWithBook `json:"items"`
	Total      decimal.Decimal    `json:"total"`
	ItemsCount int                `json:"items_count"`
}
