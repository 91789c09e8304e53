package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// isValidationFailure reports whether a service error came from request
// validation rather than infrastructure
func isValidationFailure(err error) bool {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return true
	}
	return strings.Contains(err.Error(), "validation failed")
}
