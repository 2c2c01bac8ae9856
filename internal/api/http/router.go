package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/team-service/internal/api/http/handlers"
	"github.com/spec-kit/team-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Teams          *handlers.TeamsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Every /teams route requires a bearer token.
// The team id segment is greedy so ids containing an escaped slash still reach
// the handlers.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Post("/auth/token", cfg.Auth.Token)

	teams := app.Group("/teams", cfg.AuthMiddleware.Handle)
	teams.Get("", cfg.Teams.List)
	teams.Post("", cfg.Teams.Create)
	teams.Get("/+", cfg.Teams.Get)
	teams.Put("/+", cfg.Teams.Update)
	teams.Delete("/+", cfg.Teams.Delete)
}
