package model

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a catalog category. Names are display keys;
// uniqueness is intentionally not enforced.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CategoryWithCount pairs a category with the number of books referencing it.
type CategoryWithCount struct {
	Category
	BookCount int `json:"book_count" db:"book_count"`
}
