// Package validation wraps go-playground/validator for request DTOs.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

func New() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Details flattens a validator error into field-level messages for 400
// responses.
func Details(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, fmt.Sprintf("%s failed on the '%s' rule", e.Field(), e.Tag()))
	}

	return details
}
