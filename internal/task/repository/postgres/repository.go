package postgres

//go:generate mockgen -destination=../../../mocks/mock_task_repository.go -package=mocks github.com/Laxit85/Regrip-Assignment/internal/task/domain TaskRepository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Laxit85/Regrip-Assignment/internal/task/domain"
)

// PgxPool is the subset of pgxpool.Pool the repository needs; satisfied by
// pgxmock in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxPool
}

func NewPostgresRepository(db PgxPool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tasks (id, user_id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, task.ID, task.UserID, task.Title, task.Description, task.Status,
		task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, description, status, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description,
			&t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}

// Update applies the non-nil fields of update to the owner's row only.
// COALESCE keeps columns whose input pointer was nil.
func (r *PostgresRepository) Update(ctx context.Context, id, userID string, update domain.TaskUpdate) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE tasks
		SET title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    status = COALESCE($5, status),
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
	`, id, userID, update.Title, update.Description, update.Status)
	if err != nil {
		return 0, fmt.Errorf("failed to update task: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM tasks WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task: %w", err)
	}

	return tag.RowsAffected(), nil
}
