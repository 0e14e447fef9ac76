package model

import "errors"

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)
