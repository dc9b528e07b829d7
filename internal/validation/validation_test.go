package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laxit85/Regrip-Assignment/internal/validation"
)

type sample struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required,len=6,numeric"`
}

func TestDetails(t *testing.T) {
	v := validation.New()

	err := v.Struct(sample{Email: "not-an-email", OTP: "12"})
	require.Error(t, err)

	details := validation.Details(err)
	assert.Contains(t, details, "Email failed on the 'email' rule")
	assert.Contains(t, details, "OTP failed on the 'len' rule")
}

func TestDetailsValidInput(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(sample{Email: "alice@example.com", OTP: "482913"}))
}
