package model

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
)
