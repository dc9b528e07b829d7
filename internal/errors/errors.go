package errors

import (
	"errors"
)

// Closed error taxonomy. Handlers translate these to response codes and never
// add detail beyond them, so callers cannot probe which emails have pending
// codes or which task ids belong to other users.
var (
	ErrInvalidOTP        = errors.New("invalid OTP")
	ErrInvalidToken      = errors.New("invalid token")
	ErrDeliveryFailed    = errors.New("failed to send OTP")
	ErrTaskNotFound      = errors.New("task not found or not authorized")
	ErrEmailAlreadyInUse = errors.New("email already in use")
)
