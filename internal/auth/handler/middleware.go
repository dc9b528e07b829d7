package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Laxit85/Regrip-Assignment/internal/auth/service"
	"github.com/Laxit85/Regrip-Assignment/pkg/constant"
)

// Authenticate is the authorization gate: it turns a bearer token into a
// resolved user id in the request locals, or short-circuits with 401 before
// the protected handler runs.
func Authenticate(tokens service.TokenGenerator, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != constant.BearerScheme || token == "" {
			log.Warn().Msg("access attempt without token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		userID, err := tokens.VerifyAccessToken(token)
		if err != nil {
			log.Warn().Err(err).Msg("invalid access token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
			})
		}

		c.Locals(constant.UserIDKey, userID)

		return c.Next()
	}
}
