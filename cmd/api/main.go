package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/tenx-mn/catering-service/internal/api/http"
	"github.com/tenx-mn/catering-service/internal/api/http/handlers"
	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/config"
	"github.com/tenx-mn/catering-service/internal/events"
	"github.com/tenx-mn/catering-service/internal/locale"
	"github.com/tenx-mn/catering-service/internal/observability"
	"github.com/tenx-mn/catering-service/internal/persistence"
	"github.com/tenx-mn/catering-service/internal/ratelimit"
	"github.com/tenx-mn/catering-service/internal/repository"
	"github.com/tenx-mn/catering-service/internal/repository/memory"
	"github.com/tenx-mn/catering-service/internal/service"
	"github.com/tenx-mn/catering-service/internal/storage"
	"github.com/tenx-mn/catering-service/internal/worker"
)

const notificationBuffer = 256

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthDeps := map[string]handlers.Pinger{}

	var store repository.Store
	db, err := persistence.OpenDatabase(ctx, cfg.Postgres, logger)
	switch {
	case errors.Is(err, persistence.ErrMissingDSN) && !cfg.App.IsProduction():
		logger.Warn("POSTGRES_DSN not set; using in-memory store, data is lost on restart")
		store = memory.NewStore()
	case err != nil:
		logger.Fatal("failed to connect postgres", zap.Error(err))
	default:
		defer db.Close()
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, db.Pool(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		store = repository.NewPostgresStore(db.Pool())
		healthDeps["postgres"] = db
	}

	cache := persistence.OpenCache(ctx, cfg.Redis, logger)
	defer cache.Close()
	healthDeps["redis"] = cache

	if cfg.Auth.SessionSecretIsDev {
		logger.Warn("SESSION_SECRET not set; signing sessions with the development secret")
	}
	codec := auth.NewSessionCodec(cfg.Auth.SessionSecret)
	sessions := auth.NewSessionStore(codec, cfg.App.IsProduction())
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	limiter := ratelimit.NewRedisLimiter(cache.Client(), cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow())

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	events.SubscribeAll(dispatcher, func(_ context.Context, event events.Event) error {
		metrics.RecordAccountEvent(string(event.Type))
		return nil
	})

	notifications := service.NewNotificationService(logger, cfg.Notification)
	notifier := worker.NewNotificationWorker(notifications.Handle, notificationBuffer, logger)
	notifier.Subscribe(dispatcher)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	go notifier.Run(workerCtx)

	blobs, err := storage.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to configure object storage", zap.Error(err))
	}

	authService := service.NewAuthService(service.AuthDependencies{
		Store:      store,
		Hasher:     hasher,
		Limiter:    limiter,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})
	dashboardUsers := service.NewDashboardUserService(store, hasher, dispatcher, logger)
	users := service.NewUserService(store, dispatcher, logger)
	chefProfiles := service.NewChefProfileService(store, dispatcher, logger)
	uploads := service.NewUploadService(blobs, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.App.BodyLimitBytes,
		ErrorHandler: httptransport.ErrorHandler(logger, metrics),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	negotiator := locale.NewNegotiator(cfg.Locale.Supported, cfg.Locale.Default)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, healthDeps),
		Auth:           handlers.NewAuthHandler(authService, sessions),
		DashboardUsers: handlers.NewDashboardUsersHandler(dashboardUsers),
		Users:          handlers.NewUsersHandler(users),
		ChefProfile:    handlers.NewChefProfileHandler(chefProfiles),
		Upload:         handlers.NewUploadHandler(uploads),
		Sessions:       auth.NewSessionMiddleware(sessions),
		Metrics:        metrics,
		Pages:          httptransport.NewPageRouter(sessions, negotiator),
		Locales:        cfg.Locale.Supported,
		Web:            cfg.Web,
	})

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	stopWorker()
	notifier.Wait()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
