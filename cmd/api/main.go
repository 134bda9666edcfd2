package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/field-service/internal/api/http"
	"github.com/spec-kit/field-service/internal/api/http/handlers"
	"github.com/spec-kit/field-service/internal/auth"
	"github.com/spec-kit/field-service/internal/config"
	"github.com/spec-kit/field-service/internal/domain"
	"github.com/spec-kit/field-service/internal/events"
	"github.com/spec-kit/field-service/internal/observability"
	"github.com/spec-kit/field-service/internal/persistence"
	"github.com/spec-kit/field-service/internal/repository"
	"github.com/spec-kit/field-service/internal/service"
	"github.com/spec-kit/field-service/internal/storage"
	"github.com/spec-kit/field-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	objectStore, err := storage.NewMinioStore(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Warn("object storage unavailable, uploads disabled", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	workerRepo := repository.NewWorkerRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	cashRepo := repository.NewCashTransactionRepository(pool)

	if pool != nil && cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		if err := bootstrapAdmin(ctx, userRepo, roleRepo, cfg.Auth); err != nil {
			logger.Warn("admin bootstrap failed", zap.Error(err))
		}
	}

	sessions, err := auth.NewSessionIssuer(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL())
	if err != nil {
		logger.Fatal("failed to init session issuer", zap.Error(err))
	}
	authenticator := auth.NewAuthenticator(userRepo, logger)
	limiter := auth.NewLoginLimiter(redis.ClientHandle(), cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow())
	metrics := observability.NewMetrics()

	accessRouter := auth.NewAccessRouter()
	sessionMiddleware := auth.NewMiddleware(sessions, accessRouter, cfg.Auth.SessionCookieName, logger).WithMetrics(metrics)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger))

	authService := service.NewAuthService(authenticator, sessions, limiter, dispatcher)
	clientService := service.NewClientService(clientRepo)
	jobService := service.NewJobService(jobRepo, clientRepo, workerRepo, userRepo, dispatcher)
	cashService := service.NewCashService(cashRepo)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	secureCookies := cfg.App.Env == "production"

	var store storage.ObjectStore
	if objectStore != nil {
		store = objectStore
	}

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:      handlers.NewAuthHandler(authService, cfg.Auth.SessionCookieName, secureCookies),
		Pages:     handlers.NewPagesHandler(cfg.App.Name),
		Clients:   handlers.NewClientsHandler(clientService),
		Jobs:      handlers.NewJobsHandler(jobService),
		Workers:   handlers.NewWorkersHandler(workerRepo),
		Cash:      handlers.NewCashHandler(cashService),
		Uploads:   handlers.NewUploadsHandler(store),
		Roles:     handlers.NewRolesHandler(roleRepo),
		Analytics: handlers.NewAnalyticsHandler(metrics),
		Session:   sessionMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// bootstrapAdmin creates the configured admin account when it does not
// exist yet, so a fresh deployment has a login to start from.
func bootstrapAdmin(ctx context.Context, users repository.UserRepository, roles repository.RoleRepository, cfg config.AuthConfig) error {
	if _, err := users.GetByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	role, err := roles.GetByName(ctx, string(domain.RoleAdmin))
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}

	return users.Create(ctx, &domain.User{
		Name:         "Administrator",
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		RoleID:       role.ID,
		Active:       true,
	})
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
