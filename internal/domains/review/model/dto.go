package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateReviewRequest is the payload for submitting a review.
type CreateReviewRequest struct {
	Rating  int     `json:"rating" binding:"required"`
	Title   *string `json:"title"`
	Comment string  `json:"comment" binding:"required"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(1).Error("rating must be between 1 and 5"),
			validation.Max(5).Error("rating must be between 1 and 5"),
		),
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(0, 200)),
		),
		validation.Field(&r.Comment,
			validation.Required.Error("comment is required"),
			validation.Length(1, 2000),
		),
	)
}
