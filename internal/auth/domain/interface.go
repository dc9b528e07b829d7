package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Laxit85/Regrip-Assignment/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_otp_store.go -package=mocks github.com/Laxit85/Regrip-Assignment/internal/auth/domain OTPStore

import (
	"context"
	"time"
)

type UserRepository interface {
	// GetByEmail and GetByID return (nil, nil) when no user exists.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	SetVerified(ctx context.Context, userID string) error
	// SetRefreshFingerprint overwrites the stored fingerprint; nil clears it.
	SetRefreshFingerprint(ctx context.Context, userID string, fingerprint *string) error
}

// OTPStore is the ephemeral secret store holding one-time codes. Put
// overwrites any existing value and restarts the TTL.
type OTPStore interface {
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}
