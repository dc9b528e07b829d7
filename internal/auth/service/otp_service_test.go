package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laxit85/Regrip-Assignment/internal/auth/repository/redisstore"
	apperrors "github.com/Laxit85/Regrip-Assignment/internal/errors"
	"github.com/Laxit85/Regrip-Assignment/internal/mocks"
)

func newOTPTestService(t *testing.T, mailer *mocks.MockMailer) (*OTPService, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := redisstore.New(rdb)

	return NewOTPService(store, mailer, 300, zerolog.Nop()), mini
}

func TestOTPService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("generates a 6-digit code and mails it", func(t *testing.T) {
		mailer := mocks.NewMockMailer(ctrl)
		s, mini := newOTPTestService(t, mailer)

		mailer.EXPECT().
			Send(gomock.Any(), "alice@example.com", "Your OTP for Task Management App", gomock.Any()).
			Return(nil)

		code, err := s.Issue(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{5}$`), code)

		stored, err := mini.Get("otp:alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, code, stored)
		assert.InDelta(t, 300*time.Second, mini.TTL("otp:alice@example.com"), float64(time.Second))
	})

	t.Run("returns ErrDeliveryFailed when mail fails and leaves the code stored", func(t *testing.T) {
		mailer := mocks.NewMockMailer(ctrl)
		s, mini := newOTPTestService(t, mailer)

		mailer.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp down"))

		_, err := s.Issue(context.Background(), "bob@example.com")
		assert.ErrorIs(t, err, apperrors.ErrDeliveryFailed)

		// The code stays pending; it will simply expire unused.
		assert.True(t, mini.Exists("otp:bob@example.com"))
	})

	t.Run("propagates store failures", func(t *testing.T) {
		mailer := mocks.NewMockMailer(ctrl)
		store := mocks.NewMockOTPStore(ctrl)
		s := NewOTPService(store, mailer, 300, zerolog.Nop())

		store.EXPECT().
			Put(gomock.Any(), "otp:carol@example.com", gomock.Any(), 300*time.Second).
			Return(errors.New("redis down"))

		_, err := s.Issue(context.Background(), "carol@example.com")
		assert.Error(t, err)
	})
}

func TestOTPService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issue := func(t *testing.T, s *OTPService, mailer *mocks.MockMailer, email string) string {
		t.Helper()
		mailer.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		code, err := s.Issue(context.Background(), email)
		require.NoError(t, err)
		return code
	}

	t.Run("verifies exactly once", func(t *testing.T) {
		mailer := mocks.NewMockMailer(ctrl)
		s, _ := newOTPTestService(t, mailer)
		code := issue(t, s, mailer, "alice@example.com")

		ok, err := s.Verify(context.Background(), "alice@example.com", code)
		require.NoError(t, err)
		assert.True(t, ok)

		// The code was consumed; the same submission now fails.
		ok, err = s.Verify(context.Background(), "alice@example.com", code)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("fails after TTL expiry even with the right code", func(t *testing.T) {
		mailer := mocks.NewMockMailer(ctrl)
		s, mini := newOTPTestService(t, mailer)
		code := issue(t, s, mailer, "alice@example.com")

		mini.FastForward(301 * time.Second)

		ok, err := s.Verify(context.Background(), "alice@example.com", code)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("a new code invalidates the previous one", func(t *testing.T) {
		mailer := mocks.NewMockMailer(ctrl)
		s, _ := newOTPTestService(t, mailer)

		first := issue(t, s, mailer, "alice@example.com")
		second := issue(t, s, mailer, "alice@example.com")

		if first == second {
			t.Skip("codes collided, overwrite is indistinguishable")
		}

		ok, err := s.Verify(context.Background(), "alice@example.com", first)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = s.Verify(context.Background(), "alice@example.com", second)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("fails for an email that never requested a code", func(t *testing.T) {
		mailer := mocks.NewMockMailer(ctrl)
		s, _ := newOTPTestService(t, mailer)

		ok, err := s.Verify(context.Background(), "nobody@example.com", "000000")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("requires an exact match", func(t *testing.T) {
		mailer := mocks.NewMockMailer(ctrl)
		s, _ := newOTPTestService(t, mailer)
		code := issue(t, s, mailer, "alice@example.com")

		ok, err := s.Verify(context.Background(), "alice@example.com", " "+code)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("does not consume the code on a mismatch", func(t *testing.T) {
		mailer := mocks.NewMockMailer(ctrl)
		s, _ := newOTPTestService(t, mailer)
		code := issue(t, s, mailer, "alice@example.com")

		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}

		ok, err := s.Verify(context.Background(), "alice@example.com", wrong)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = s.Verify(context.Background(), "alice@example.com", code)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
