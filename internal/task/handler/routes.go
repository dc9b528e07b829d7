package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the task CRUD routes behind the authorization gate
// and the generic API limiter.
func RegisterRoutes(app *fiber.App, h *TaskHandler, authenticate, apiLimiter fiber.Handler) {
	tasks := app.Group("/api/tasks", authenticate, apiLimiter)
	tasks.Post("/", h.Create)
	tasks.Get("/", h.List)
	tasks.Patch("/:id", h.Update)
	tasks.Delete("/:id", h.Delete)
}
