package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"

	"github.com/Laxit85/Regrip-Assignment/config"
	"github.com/Laxit85/Regrip-Assignment/db"
	"github.com/Laxit85/Regrip-Assignment/internal/activity"
	authhandler "github.com/Laxit85/Regrip-Assignment/internal/auth/handler"
	authrepo "github.com/Laxit85/Regrip-Assignment/internal/auth/repository/postgres"
	"github.com/Laxit85/Regrip-Assignment/internal/auth/repository/redisstore"
	authservice "github.com/Laxit85/Regrip-Assignment/internal/auth/service"
	"github.com/Laxit85/Regrip-Assignment/internal/mail"
	"github.com/Laxit85/Regrip-Assignment/internal/ratelimit"
	taskhandler "github.com/Laxit85/Regrip-Assignment/internal/task/handler"
	taskrepo "github.com/Laxit85/Regrip-Assignment/internal/task/repository/postgres"
	taskservice "github.com/Laxit85/Regrip-Assignment/internal/task/service"
	"github.com/Laxit85/Regrip-Assignment/internal/validation"
	"github.com/Laxit85/Regrip-Assignment/pkg/constant"
)

func main() {
	cfg := config.Load()
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DBURL); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	validate := validation.New()

	recorder := activity.NewAsyncRecorder(activity.NewPostgresStore(pool), log)
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom)

	userRepo := authrepo.NewPostgresRepository(pool)
	otpStore := redisstore.New(rdb)
	otpService := authservice.NewOTPService(otpStore, mailer, cfg.OTPTTLSeconds, log)
	tokenService := authservice.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin, cfg.FingerprintCost)
	authService := authservice.NewAuthService(userRepo, otpService, tokenService, recorder, log)
	authHandler := authhandler.NewAuthHandler(authService, validate)

	taskRepo := taskrepo.NewPostgresRepository(pool)
	taskService := taskservice.NewTaskService(taskRepo, recorder, log)
	taskHandler := taskhandler.NewTaskHandler(taskService, validate)

	authLimiter := ratelimit.NewRedisLimiter(rdb, constant.RateLimitAuthPrefix,
		cfg.AuthRateLimitMax, cfg.AuthRateLimitWindowSec)
	apiLimiter := ratelimit.NewRedisLimiter(rdb, constant.RateLimitAPIPrefix,
		cfg.APIRateLimitMax, cfg.APIRateLimitWindowSec)

	app := fiber.New()
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "Regrip Task Management Backend is running",
		})
	})

	authenticate := authhandler.Authenticate(tokenService, log)
	authhandler.RegisterRoutes(app, authHandler, authhandler.Middlewares{
		Authenticate: authenticate,
		AuthLimiter:  ratelimit.Middleware(authLimiter, log),
		APILimiter:   ratelimit.Middleware(apiLimiter, log),
	})
	taskhandler.RegisterRoutes(app, taskHandler, authenticate, ratelimit.Middleware(apiLimiter, log))

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
