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
	apperrors "github.com/Laxit85/Regrip-Assignment/internal/errors"
	"github.com/Laxit85/Regrip-Assignment/internal/mocks"
	"github.com/Laxit85/Regrip-Assignment/internal/task/domain"
	"github.com/Laxit85/Regrip-Assignment/internal/task/dto"
	"github.com/Laxit85/Regrip-Assignment/internal/task/service"
	"github.com/Laxit85/Regrip-Assignment/pkg/constant"
)

type taskFixture struct {
	repo     *mocks.MockTaskRepository
	recorder *mocks.MockRecorder
	svc      *service.TaskService
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &taskFixture{
		repo:     mocks.NewMockTaskRepository(ctrl),
		recorder: mocks.NewMockRecorder(ctrl),
	}
	f.svc = service.NewTaskService(f.repo, f.recorder, zerolog.Nop())

	return f
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	userID := "user-123"

	t.Run("creates a task with explicit status", func(t *testing.T) {
		f := newTaskFixture(t)

		f.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, task *domain.Task) error {
				assert.NotEmpty(t, task.ID)
				assert.Equal(t, userID, task.UserID)
				assert.Equal(t, "write report", task.Title)
				assert.Equal(t, constant.TaskStatusCompleted, task.Status)
				return nil
			})
		f.recorder.EXPECT().Record(activity.EventTaskCreated, `Task "write report" created`, &userID)

		task, err := f.svc.Create(ctx, userID, dto.CreateTaskInput{
			Title:       "write report",
			Description: "quarterly numbers",
			Status:      constant.TaskStatusCompleted,
		})
		require.NoError(t, err)
		assert.Equal(t, constant.TaskStatusCompleted, task.Status)
	})

	t.Run("defaults status to pending", func(t *testing.T) {
		f := newTaskFixture(t)

		f.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.recorder.EXPECT().Record(activity.EventTaskCreated, gomock.Any(), &userID)

		task, err := f.svc.Create(ctx, userID, dto.CreateTaskInput{Title: "write report"})
		require.NoError(t, err)
		assert.Equal(t, constant.TaskStatusPending, task.Status)
	})

	t.Run("repository failure records nothing", func(t *testing.T) {
		f := newTaskFixture(t)

		f.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

		_, err := f.svc.Create(ctx, userID, dto.CreateTaskInput{Title: "write report"})
		assert.Error(t, err)
	})
}

func TestTaskService_List(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	expected := []domain.Task{{ID: "task-1", UserID: "user-123", Title: "write report"}}
	f.repo.EXPECT().ListByUser(ctx, "user-123").Return(expected, nil)

	tasks, err := f.svc.List(ctx, "user-123")
	require.NoError(t, err)
	assert.Equal(t, expected, tasks)
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()
	userID := "user-123"
	title := "revised title"

	t.Run("success", func(t *testing.T) {
		f := newTaskFixture(t)

		f.repo.EXPECT().Update(ctx, "task-1", userID, domain.TaskUpdate{Title: &title}).Return(int64(1), nil)
		f.recorder.EXPECT().Record(activity.EventTaskUpdated, "Task task-1 updated", &userID)

		err := f.svc.Update(ctx, userID, "task-1", dto.UpdateTaskInput{Title: &title})
		assert.NoError(t, err)
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		f := newTaskFixture(t)

		f.repo.EXPECT().Update(ctx, "task-1", userID, gomock.Any()).Return(int64(0), nil)

		err := f.svc.Update(ctx, userID, "task-1", dto.UpdateTaskInput{Title: &title})
		assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newTaskFixture(t)

		f.repo.EXPECT().Update(ctx, "task-1", userID, gomock.Any()).Return(int64(0), errors.New("update failed"))

		err := f.svc.Update(ctx, userID, "task-1", dto.UpdateTaskInput{Title: &title})
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrTaskNotFound)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := "user-123"

	t.Run("success", func(t *testing.T) {
		f := newTaskFixture(t)

		f.repo.EXPECT().Delete(ctx, "task-1", userID).Return(int64(1), nil)
		f.recorder.EXPECT().Record(activity.EventTaskDeleted, "Task task-1 deleted", &userID)

		assert.NoError(t, f.svc.Delete(ctx, userID, "task-1"))
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		f := newTaskFixture(t)

		f.repo.EXPECT().Delete(ctx, "task-1", userID).Return(int64(0), nil)

		assert.ErrorIs(t, f.svc.Delete(ctx, userID, "task-1"), apperrors.ErrTaskNotFound)
	})
}
