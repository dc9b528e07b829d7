package mail

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/Laxit85/Regrip-Assignment/internal/mail Mailer

import "context"

// Mailer is the outbound delivery collaborator. Transport internals are
// opaque to the core; a failure means the message was not handed off.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
