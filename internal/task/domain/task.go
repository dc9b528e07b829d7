package domain

import (
	"context"
	"time"
)

type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
}

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	ListByUser(ctx context.Context, userID string) ([]Task, error)
	// Update and Delete are scoped by owner; they report the number of rows
	// touched so the caller can collapse "missing" and "not yours" into one
	// outcome.
	Update(ctx context.Context, id, userID string, update TaskUpdate) (int64, error)
	Delete(ctx context.Context, id, userID string) (int64, error)
}
