package ratelimit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Middleware rejects requests over the limit with 429, keyed by client IP.
// A limiter backend failure fails open: a redis outage must not take down
// login for everyone.
func Middleware(limiter Limiter, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, err := limiter.Allow(c.UserContext(), c.IP())
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests",
			})
		}

		return c.Next()
	}
}
