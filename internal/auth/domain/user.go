package domain

import "time"

// User is the identity anchor. RefreshFingerprint holds a one-way hash of the
// current refresh token; nil means no active session.
type User struct {
	ID                 string
	Email              string
	IsVerified         bool
	RefreshFingerprint *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
