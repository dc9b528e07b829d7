package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	apperrors "github.com/Laxit85/Regrip-Assignment/internal/errors"
	"github.com/Laxit85/Regrip-Assignment/internal/task/domain"
	"github.com/Laxit85/Regrip-Assignment/internal/task/dto"
	"github.com/Laxit85/Regrip-Assignment/internal/task/service"
	"github.com/Laxit85/Regrip-Assignment/internal/validation"
	"github.com/Laxit85/Regrip-Assignment/pkg/constant"
)

type TaskHandler struct {
	taskService *service.TaskService
	validate    *validator.Validate
}

func NewTaskHandler(taskService *service.TaskService, validate *validator.Validate) *TaskHandler {
	return &TaskHandler{taskService: taskService, validate: validate}
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals(constant.UserIDKey).(string)
	if !ok || userID == "" {
		return unauthorized(c)
	}

	var input dto.CreateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationError(c, validation.Details(err))
	}

	task, err := h.taskService.Create(c.UserContext(), userID, input)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(toOutput(*task))
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals(constant.UserIDKey).(string)
	if !ok || userID == "" {
		return unauthorized(c)
	}

	tasks, err := h.taskService.List(c.UserContext(), userID)
	if err != nil {
		return internalError(c)
	}

	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toOutput(t))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	userID, ok := c.Locals(constant.UserIDKey).(string)
	if !ok || userID == "" {
		return unauthorized(c)
	}

	// A malformed id cannot match any row; short-circuit before the UUID
	// column rejects the cast.
	if uuid.Validate(c.Params("id")) != nil {
		return taskNotFound(c)
	}

	var input dto.UpdateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}
	if input.Empty() {
		return validationError(c, []string{"at least one field must be provided"})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationError(c, validation.Details(err))
	}

	if err := h.taskService.Update(c.UserContext(), userID, c.Params("id"), input); err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return taskNotFound(c)
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Task updated successfully",
	})
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	userID, ok := c.Locals(constant.UserIDKey).(string)
	if !ok || userID == "" {
		return unauthorized(c)
	}

	if uuid.Validate(c.Params("id")) != nil {
		return taskNotFound(c)
	}

	if err := h.taskService.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return taskNotFound(c)
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Task deleted successfully",
	})
}

func toOutput(t domain.Task) dto.TaskOutput {
	return dto.TaskOutput{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func validationError(c *fiber.Ctx, details []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation error",
		"details": details,
	})
}

// taskNotFound collapses "nonexistent id" and "someone else's task" so the
// response never confirms which it was.
func taskNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Task not found or not authorized",
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Unauthorized",
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal Server Error",
	})
}
