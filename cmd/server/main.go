package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"proptrack/internal/config"
	"proptrack/internal/database"
	"proptrack/internal/handlers"
	"proptrack/internal/platform/storage"
	"proptrack/internal/response"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: response.ErrorHandler(logger),
	})

	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(healthcheck.New())

	handlers.Register(app, db, storage.NewService(cfg.Storage()), logger)

	app.Use(func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		logger.Info().Msg("Shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	if err := app.Listen(fmt.Sprintf(":%d", cfg.ServerPort)); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}

	if err := database.Close(db); err != nil {
		logger.Error().Err(err).Msg("Failed to close database")
	}
}
