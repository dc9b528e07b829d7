package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laxit85/Regrip-Assignment/internal/activity"
	"github.com/Laxit85/Regrip-Assignment/internal/auth/domain"
	"github.com/Laxit85/Regrip-Assignment/internal/auth/service"
	apperrors "github.com/Laxit85/Regrip-Assignment/internal/errors"
	"github.com/Laxit85/Regrip-Assignment/internal/mocks"
)

type authServiceMocks struct {
	repo     *mocks.MockUserRepository
	otp      *mocks.MockOTPManager
	tokens   *mocks.MockTokenGenerator
	recorder *mocks.MockRecorder
}

func newAuthService(ctrl *gomock.Controller) (*service.AuthService, authServiceMocks) {
	m := authServiceMocks{
		repo:     mocks.NewMockUserRepository(ctrl),
		otp:      mocks.NewMockOTPManager(ctrl),
		tokens:   mocks.NewMockTokenGenerator(ctrl),
		recorder: mocks.NewMockRecorder(ctrl),
	}

	s := service.NewAuthService(m.repo, m.otp, m.tokens, m.recorder, zerolog.Nop())

	return s, m
}

func TestAuthService_SendOTP(t *testing.T) {
	ctx := context.Background()
	email := "alice@example.com"
	existing := &domain.User{ID: "user-123", Email: email}

	t.Run("issues a code for an existing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.repo.EXPECT().GetByEmail(ctx, email).Return(existing, nil)
		m.otp.EXPECT().Issue(ctx, email).Return("482913", nil)
		m.recorder.EXPECT().Record(activity.EventOTPSent, gomock.Any(), gomock.Any())

		err := s.SendOTP(ctx, email)
		assert.NoError(t, err)
	})

	t.Run("creates an unverified user on first request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.repo.EXPECT().GetByEmail(ctx, email).Return(nil, nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u *domain.User) error {
				assert.Equal(t, email, u.Email)
				assert.False(t, u.IsVerified)
				assert.NotEmpty(t, u.ID)
				return nil
			})
		m.otp.EXPECT().Issue(ctx, email).Return("482913", nil)
		m.recorder.EXPECT().Record(activity.EventOTPSent, gomock.Any(), gomock.Any())

		err := s.SendOTP(ctx, email)
		assert.NoError(t, err)
	})

	t.Run("resolves a lost create race by re-reading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.repo.EXPECT().GetByEmail(ctx, email).Return(nil, nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).Return(apperrors.ErrEmailAlreadyInUse)
		m.repo.EXPECT().GetByEmail(ctx, email).Return(existing, nil)
		m.otp.EXPECT().Issue(ctx, email).Return("482913", nil)
		m.recorder.EXPECT().Record(activity.EventOTPSent, gomock.Any(), gomock.Any())

		err := s.SendOTP(ctx, email)
		assert.NoError(t, err)
	})

	t.Run("propagates delivery failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.repo.EXPECT().GetByEmail(ctx, email).Return(existing, nil)
		m.otp.EXPECT().Issue(ctx, email).Return("", apperrors.ErrDeliveryFailed)

		err := s.SendOTP(ctx, email)
		assert.ErrorIs(t, err, apperrors.ErrDeliveryFailed)
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	ctx := context.Background()
	email := "alice@example.com"
	user := &domain.User{ID: "user-123", Email: email}

	t.Run("mints a token pair and stores the fingerprint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.otp.EXPECT().Verify(ctx, email, "482913").Return(true, nil)
		m.repo.EXPECT().GetByEmail(ctx, email).Return(user, nil)
		m.repo.EXPECT().SetVerified(ctx, user.ID).Return(nil)
		m.tokens.EXPECT().GeneratePair(user.ID).Return("access-token", "refresh-token", nil)
		m.tokens.EXPECT().Fingerprint("refresh-token").Return("hashed-refresh", nil)
		m.repo.EXPECT().SetRefreshFingerprint(ctx, user.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fp *string) error {
				require.NotNil(t, fp)
				assert.Equal(t, "hashed-refresh", *fp)
				return nil
			})
		m.recorder.EXPECT().Record(activity.EventLoginSuccess, gomock.Any(), gomock.Any())

		tokens, err := s.VerifyOTP(ctx, email, "482913")
		require.NoError(t, err)
		assert.Equal(t, "access-token", tokens.AccessToken)
		assert.Equal(t, "refresh-token", tokens.RefreshToken)
	})

	t.Run("records otp_failed and rejects a wrong code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.otp.EXPECT().Verify(ctx, email, "000000").Return(false, nil)
		m.recorder.EXPECT().Record(activity.EventOTPFailed, gomock.Any(), gomock.Nil())

		tokens, err := s.VerifyOTP(ctx, email, "000000")
		assert.ErrorIs(t, err, apperrors.ErrInvalidOTP)
		assert.Nil(t, tokens)
	})

	t.Run("creates the user when verification is the first contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.otp.EXPECT().Verify(ctx, email, "482913").Return(true, nil)
		m.repo.EXPECT().GetByEmail(ctx, email).Return(nil, nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		m.repo.EXPECT().SetVerified(ctx, gomock.Any()).Return(nil)
		m.tokens.EXPECT().GeneratePair(gomock.Any()).Return("a", "r", nil)
		m.tokens.EXPECT().Fingerprint("r").Return("h", nil)
		m.repo.EXPECT().SetRefreshFingerprint(ctx, gomock.Any(), gomock.Any()).Return(nil)
		m.recorder.EXPECT().Record(activity.EventLoginSuccess, gomock.Any(), gomock.Any())

		tokens, err := s.VerifyOTP(ctx, email, "482913")
		require.NoError(t, err)
		assert.Equal(t, "a", tokens.AccessToken)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	fingerprint := "stored-fingerprint"
	user := &domain.User{ID: "user-123", Email: "alice@example.com", RefreshFingerprint: &fingerprint}

	t.Run("rotates a valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.tokens.EXPECT().VerifyRefreshToken("old-refresh").Return(user.ID, nil)
		m.repo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
		m.tokens.EXPECT().CompareFingerprint(fingerprint, "old-refresh").Return(true)
		m.tokens.EXPECT().GeneratePair(user.ID).Return("new-access", "new-refresh", nil)
		m.tokens.EXPECT().Fingerprint("new-refresh").Return("new-fingerprint", nil)
		m.repo.EXPECT().SetRefreshFingerprint(ctx, user.ID, gomock.Any()).Return(nil)
		m.recorder.EXPECT().Record(activity.EventTokenRefresh, gomock.Any(), gomock.Any())

		tokens, err := s.Refresh(ctx, "old-refresh")
		require.NoError(t, err)
		assert.Equal(t, "new-access", tokens.AccessToken)
		assert.Equal(t, "new-refresh", tokens.RefreshToken)
		assert.NotEqual(t, "old-refresh", tokens.RefreshToken)
	})

	t.Run("rejects a token that fails signature or expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.tokens.EXPECT().VerifyRefreshToken("bad").Return("", apperrors.ErrInvalidToken)

		_, err := s.Refresh(ctx, "bad")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("rejects when the user no longer exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.tokens.EXPECT().VerifyRefreshToken("old-refresh").Return("ghost", nil)
		m.repo.EXPECT().GetByID(ctx, "ghost").Return(nil, nil)

		_, err := s.Refresh(ctx, "old-refresh")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("rejects when no session is active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		loggedOut := &domain.User{ID: user.ID, Email: user.Email}
		m.tokens.EXPECT().VerifyRefreshToken("old-refresh").Return(user.ID, nil)
		m.repo.EXPECT().GetByID(ctx, user.ID).Return(loggedOut, nil)

		_, err := s.Refresh(ctx, "old-refresh")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("detects reuse of a rotated-away token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.tokens.EXPECT().VerifyRefreshToken("stale-refresh").Return(user.ID, nil)
		m.repo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
		m.tokens.EXPECT().CompareFingerprint(fingerprint, "stale-refresh").Return(false)

		_, err := s.Refresh(ctx, "stale-refresh")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the stored fingerprint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.repo.EXPECT().SetRefreshFingerprint(ctx, "user-123", gomock.Nil()).Return(nil)
		m.recorder.EXPECT().Record(activity.EventLogout, gomock.Any(), gomock.Any())

		err := s.Logout(ctx, "user-123")
		assert.NoError(t, err)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newAuthService(ctrl)

		m.repo.EXPECT().SetRefreshFingerprint(ctx, "user-123", gomock.Nil()).
			Return(errors.New("db down"))

		err := s.Logout(ctx, "user-123")
		assert.Error(t, err)
	})
}
