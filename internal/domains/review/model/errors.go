package model

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrAlreadyReviewed = errors.New("you have already reviewed this book")
)
