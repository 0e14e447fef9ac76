package handler

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// validationErrors unwraps an ozzo field-error map so the handler can hand
// it to the response envelope as details.
func validationErrors(err error) (validation.Errors, bool) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
