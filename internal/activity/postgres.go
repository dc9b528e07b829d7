package activity

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the subset of pgxpool.Pool the store needs; satisfied by pgxmock
// in tests.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresStore struct {
	db Execer
}

func NewPostgresStore(db Execer) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, record *Record) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO activities (id, type, message, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, record.ID, record.Type, record.Message, record.UserID, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	return nil
}
