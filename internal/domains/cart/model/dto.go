package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpdateQuantityRequest sets a cart line to an absolute quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (r UpdateQuantityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity,
			validation.Required.Error("quantity is required"),
			validation.Min(1).Error("quantity must be at least 1"),
		),
	)
}
