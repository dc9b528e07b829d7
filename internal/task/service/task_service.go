package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Laxit85/Regrip-Assignment/internal/activity"
	apperrors "github.com/Laxit85/Regrip-Assignment/internal/errors"
	"github.com/Laxit85/Regrip-Assignment/internal/task/domain"
	"github.com/Laxit85/Regrip-Assignment/internal/task/dto"
	"github.com/Laxit85/Regrip-Assignment/pkg/constant"
)

type TaskService struct {
	repo     domain.TaskRepository
	activity activity.Recorder
	log      zerolog.Logger
}

func NewTaskService(repo domain.TaskRepository, recorder activity.Recorder, log zerolog.Logger) *TaskService {
	return &TaskService{
		repo:     repo,
		activity: recorder,
		log:      log,
	}
}

func (s *TaskService) Create(ctx context.Context, userID string, input dto.CreateTaskInput) (*domain.Task, error) {
	status := input.Status
	if status == "" {
		status = constant.TaskStatusPending
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.activity.Record(activity.EventTaskCreated,
		fmt.Sprintf("Task %q created", task.Title), &userID)

	return task, nil
}

func (s *TaskService) List(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update applies a partial update to the caller's own task. A zero row count
// collapses "no such task" and "someone else's task" into ErrTaskNotFound.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, input dto.UpdateTaskInput) error {
	rows, err := s.repo.Update(ctx, taskID, userID, domain.TaskUpdate{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrTaskNotFound
	}

	s.activity.Record(activity.EventTaskUpdated,
		fmt.Sprintf("Task %s updated", taskID), &userID)

	return nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	rows, err := s.repo.Delete(ctx, taskID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrTaskNotFound
	}

	s.activity.Record(activity.EventTaskDeleted,
		fmt.Sprintf("Task %s deleted", taskID), &userID)

	return nil
}
