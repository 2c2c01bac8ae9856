package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/team-service/internal/api/http"
	"github.com/spec-kit/team-service/internal/api/http/handlers"
	"github.com/spec-kit/team-service/internal/auth"
	"github.com/spec-kit/team-service/internal/config"
	"github.com/spec-kit/team-service/internal/events"
	"github.com/spec-kit/team-service/internal/observability"
	"github.com/spec-kit/team-service/internal/persistence"
	"github.com/spec-kit/team-service/internal/repository"
	"github.com/spec-kit/team-service/internal/repository/memory"
	"github.com/spec-kit/team-service/internal/service"
	"github.com/spec-kit/team-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartTeamEventWorker(dispatcher, worker.NewTeamEventPublisher(redis.Client, cfg.Redis.EventsChannel, logger))

	teamRepo, employeeRepo := buildRepositories(pg, logger)
	teamService := service.NewTeamService(service.TeamDependencies{
		TeamRepo:     teamRepo,
		EmployeeRepo: employeeRepo,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	authService := service.NewAuthService(cfg.Auth)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	metrics := observability.NewMetrics()
	app := httptransport.NewApp(cfg.App)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Teams:          handlers.NewTeamsHandler(teamService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("fiber shutdown", zap.Error(err))
	}
}

func buildRepositories(pg *persistence.Postgres, logger *zap.Logger) (repository.TeamRepository, repository.EmployeeRepository) {
	pool := pg.PoolHandle()
	if pool == nil {
		logger.Warn("using in-memory repositories; data is lost on restart")
		return memory.NewTeamRepository(), memory.NewEmployeeRepository()
	}
	return repository.NewTeamRepository(pool), repository.NewEmployeeRepository(pool)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
