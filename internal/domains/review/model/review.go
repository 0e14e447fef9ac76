package model

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a user's review of a book. Each (book, user) pair may
// hold at most one review.
type Review struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BookID    uuid.UUID `json:"book_id" db:"book_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	Title     *string   `json:"title" db:"title"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReviewWithUser is a review joined with the reviewer's username.
type ReviewWithUser struct {
	Review
	Username string `json:"username" db:"username"`
}

// ReviewWithBook is a review joined with the reviewed book, for the
// user's dashboard.
type ReviewWithBook struct {
	Review
	BookTitle  string  `json:"book_title" db:"book_title"`
	BookAuthor string  `json:"book_author" db:"book_author"`
	BookCover  *string `json:"book_cover" db:"book_cover"`
}
