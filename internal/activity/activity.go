// Package activity is the append-only audit log of security-relevant events.
// Recording is fire-and-forget: a failed write is logged and swallowed, never
// propagated to the operation that triggered it.
package activity

//go:generate mockgen -destination=../mocks/mock_activity.go -package=mocks github.com/Laxit85/Regrip-Assignment/internal/activity Recorder,Store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Closed set of event types.
const (
	EventOTPSent      = "otp_sent"
	EventOTPFailed    = "otp_failed"
	EventLoginSuccess = "login_success"
	EventTokenRefresh = "token_refresh"
	EventLogout       = "logout"
	EventTaskCreated  = "task_created"
	EventTaskUpdated  = "task_updated"
	EventTaskDeleted  = "task_deleted"
)

// recordTimeout bounds a single async insert so abandoned requests cannot
// leak goroutines indefinitely.
const recordTimeout = 5 * time.Second

type Record struct {
	ID        string
	Type      string
	Message   string
	UserID    *string
	CreatedAt time.Time
}

type Store interface {
	Insert(ctx context.Context, record *Record) error
}

type Recorder interface {
	Record(eventType, message string, userID *string)
}

type AsyncRecorder struct {
	store Store
	log   zerolog.Logger
}

func NewAsyncRecorder(store Store, log zerolog.Logger) *AsyncRecorder {
	return &AsyncRecorder{store: store, log: log}
}

// Record appends an event in a detached goroutine. A background context is
// used so request cancellation does not abort an in-flight insert.
func (r *AsyncRecorder) Record(eventType, message string, userID *string) {
	record := &Record{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := r.store.Insert(ctx, record); err != nil {
			r.log.Error().Err(err).Str("type", eventType).Msg("failed to log activity")
		}
	}()
}
