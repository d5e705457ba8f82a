package main

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rishab4242/Expense-Tracker-App/internal/auth"
	"github.com/rishab4242/Expense-Tracker-App/internal/config"
	"github.com/rishab4242/Expense-Tracker-App/internal/logging"
	"github.com/rishab4242/Expense-Tracker-App/internal/router"
	"github.com/rishab4242/Expense-Tracker-App/internal/transaction"
)

func main() {
	logger := logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("config.Load")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("pgxpool.New")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.WithError(err).Fatal("database ping")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(logging.RequestLogger(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	secret := []byte(cfg.JWTSecret)
	repo := transaction.NewRepo(pool)
	svc := transaction.NewService(repo)

	r := &router.Router{
		AuthHandler: &auth.Handler{DB: pool, Secret: secret},
		TxHandler:   transaction.NewHandler(svc, logger),
		AuthMW:      auth.Middleware(secret),
	}
	r.RegisterRoutes(app)

	logger.WithField("port", cfg.Port).Info("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("app.Listen")
	}
}
