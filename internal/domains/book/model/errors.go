package model

import "errors"

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrISBNExists       = errors.New("a book with this ISBN already exists")
	ErrInvalidCondition = errors.New("invalid condition")
	ErrInvalidSortKey   = errors.New("invalid sort key")
)
