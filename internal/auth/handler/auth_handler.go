package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Laxit85/Regrip-Assignment/internal/auth/dto"
	"github.com/Laxit85/Regrip-Assignment/internal/auth/service"
	apperrors "github.com/Laxit85/Regrip-Assignment/internal/errors"
	"github.com/Laxit85/Regrip-Assignment/internal/validation"
	"github.com/Laxit85/Regrip-Assignment/pkg/constant"
)

type AuthHandler struct {
	authService *service.AuthService
	validate    *validator.Validate
}

func NewAuthHandler(authService *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{authService: authService, validate: validate}
}

func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var input dto.SendOTPInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationError(c, err)
	}

	if err := h.authService.SendOTP(c.UserContext(), input.Email); err != nil {
		if errors.Is(err, apperrors.ErrDeliveryFailed) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to send OTP",
			})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "OTP sent successfully",
	})
}

func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var input dto.VerifyOTPInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationError(c, err)
	}

	tokens, err := h.authService.VerifyOTP(c.UserContext(), input.Email, input.OTP)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidOTP) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid OTP",
			})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationError(c, err)
	}

	tokens, err := h.authService.Refresh(c.UserContext(), input.RefreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid refresh token",
			})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, ok := c.Locals(constant.UserIDKey).(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	if err := h.authService.Logout(c.UserContext(), userID); err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

func validationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation error",
		"details": validation.Details(err),
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal Server Error",
	})
}
