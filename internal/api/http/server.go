package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/team-service/internal/config"
)

// NewApp builds the fiber application. Path parameters are unescaped so team
// ids reach handlers as their literal values.
func NewApp(cfg config.AppConfig) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               cfg.Name,
		UnescapePath:          true,
		DisableStartupMessage: cfg.Env != "development",
		ReadTimeout:           cfg.RequestTimeout(),
		WriteTimeout:          cfg.RequestTimeout(),
	})
}
