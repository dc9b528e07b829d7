package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Laxit85/Regrip-Assignment/internal/activity"
	"github.com/Laxit85/Regrip-Assignment/internal/auth/domain"
	"github.com/Laxit85/Regrip-Assignment/internal/auth/dto"
	apperrors "github.com/Laxit85/Regrip-Assignment/internal/errors"
)

// AuthService orchestrates the passwordless login lifecycle: OTP issuance,
// verification, token pair minting, refresh rotation and logout.
type AuthService struct {
	repo     domain.UserRepository
	otp      OTPManager
	tokens   TokenGenerator
	activity activity.Recorder
	log      zerolog.Logger
}

func NewAuthService(repo domain.UserRepository, otp OTPManager, tokens TokenGenerator,
	recorder activity.Recorder, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		otp:      otp,
		tokens:   tokens,
		activity: recorder,
		log:      log,
	}
}

func (s *AuthService) SendOTP(ctx context.Context, email string) error {
	user, err := s.findOrCreateUser(ctx, email)
	if err != nil {
		return err
	}

	if _, err := s.otp.Issue(ctx, email); err != nil {
		return err
	}

	s.activity.Record(activity.EventOTPSent, fmt.Sprintf("OTP sent to %s", email), &user.ID)

	return nil
}

func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (*dto.TokenResponse, error) {
	ok, err := s.otp.Verify(ctx, email, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.activity.Record(activity.EventOTPFailed, fmt.Sprintf("Invalid OTP for %s", email), nil)
		return nil, apperrors.ErrInvalidOTP
	}

	user, err := s.findOrCreateUser(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetVerified(ctx, user.ID); err != nil {
		return nil, err
	}

	pair, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.activity.Record(activity.EventLoginSuccess,
		fmt.Sprintf("User %s logged in successfully", email), &user.ID)

	return pair, nil
}

// Refresh rotates the presented refresh token. The fingerprint comparison is
// the reuse-detection point: a token already rotated away no longer matches
// the stored fingerprint and is rejected. Two concurrent rotations of the
// same token may both pass the check; the later fingerprint write wins and
// the loser's refresh token dead-ends on its next rotation.
func (s *AuthService) Refresh(ctx context.Context, presented string) (*dto.TokenResponse, error) {
	userID, err := s.tokens.VerifyRefreshToken(presented)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.RefreshFingerprint == nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !s.tokens.CompareFingerprint(*user.RefreshFingerprint, presented) {
		s.log.Warn().Str("user_id", user.ID).Msg("refresh token reuse detected")
		return nil, apperrors.ErrInvalidToken
	}

	pair, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.activity.Record(activity.EventTokenRefresh, "Access token refreshed", &user.ID)

	return pair, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.repo.SetRefreshFingerprint(ctx, userID, nil); err != nil {
		return err
	}

	s.activity.Record(activity.EventLogout, "User logged out", &userID)

	return nil
}

// issueSession mints a token pair and persists the new refresh fingerprint,
// replacing whatever was stored before.
func (s *AuthService) issueSession(ctx context.Context, userID string) (*dto.TokenResponse, error) {
	accessToken, refreshToken, err := s.tokens.GeneratePair(userID)
	if err != nil {
		return nil, err
	}

	fingerprint, err := s.tokens.Fingerprint(refreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetRefreshFingerprint(ctx, userID, &fingerprint); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// findOrCreateUser is the idempotent upsert: find, else create. The two
// steps are not atomic; a concurrent create surfaces as a unique violation
// and is resolved by re-reading.
func (s *AuthService) findOrCreateUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	now := time.Now()
	user = &domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.Create(ctx, user)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, apperrors.ErrEmailAlreadyInUse) {
		// Lost the benign create race; the winner's row is ours to use.
		existing, err := s.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("user %s vanished after create conflict", email)
		}
		return existing, nil
	}

	return nil, err
}
