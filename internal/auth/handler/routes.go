package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Middlewares bundles the route-level guards wired in from main.
type Middlewares struct {
	Authenticate fiber.Handler
	AuthLimiter  fiber.Handler
	APILimiter   fiber.Handler
}

func RegisterRoutes(app *fiber.App, h *AuthHandler, mw Middlewares) {
	auth := app.Group("/api/auth")
	auth.Post("/send-otp", mw.AuthLimiter, h.SendOTP)
	auth.Post("/verify-otp", h.VerifyOTP)
	auth.Post("/refresh-token", mw.APILimiter, h.Refresh)
	auth.Post("/logout", mw.Authenticate, h.Logout)
}
