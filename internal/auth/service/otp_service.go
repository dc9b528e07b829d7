package service

//go:generate mockgen -destination=../../mocks/mock_otp_manager.go -package=mocks github.com/Laxit85/Regrip-Assignment/internal/auth/service OTPManager

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/Laxit85/Regrip-Assignment/internal/auth/domain"
	apperrors "github.com/Laxit85/Regrip-Assignment/internal/errors"
	"github.com/Laxit85/Regrip-Assignment/internal/mail"
	"github.com/Laxit85/Regrip-Assignment/pkg/constant"
)

type OTPManager interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) (bool, error)
}

type OTPService struct {
	store  domain.OTPStore
	mailer mail.Mailer
	ttl    time.Duration
	log    zerolog.Logger
}

func NewOTPService(store domain.OTPStore, mailer mail.Mailer, ttlSeconds int, log zerolog.Logger) *OTPService {
	return &OTPService{
		store:  store,
		mailer: mailer,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		log:    log,
	}
}

// Issue generates a 6-digit code, stores it under the email's key and mails
// it out. The returned code is for internal visibility only; the HTTP layer
// must never echo it to clients. On delivery failure the stored code is left
// in place and simply expires unused.
func (s *OTPService) Issue(ctx context.Context, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	key := constant.OTPKeyPrefix + email
	if err := s.store.Put(ctx, key, code, s.ttl); err != nil {
		return "", err
	}

	body := fmt.Sprintf("Your OTP is: %s. It expires in 5 minutes.", code)
	if err := s.mailer.Send(ctx, email, constant.OTPEmailSubject, body); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("failed to deliver OTP")
		return "", apperrors.ErrDeliveryFailed
	}

	s.log.Info().Str("email", email).Msg("OTP sent successfully")

	return code, nil
}

// Verify checks the submitted code against the stored one and consumes it on
// a match. Absent, expired and mismatched codes are indistinguishable to the
// caller.
func (s *OTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	key := constant.OTPKeyPrefix + email

	stored, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok || stored != code {
		s.log.Warn().Str("email", email).Msg("invalid OTP attempt")
		return false, nil
	}

	// Single use: consume before reporting success.
	if err := s.store.Delete(ctx, key); err != nil {
		return false, err
	}

	s.log.Info().Str("email", email).Msg("OTP verified successfully")

	return true, nil
}

// generateCode draws uniformly from [100000, 999999] so the code is always
// exactly 6 digits.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
