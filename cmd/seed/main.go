// Command seed creates the initial administrator account.
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/config"
	"github.com/tenx-mn/catering-service/internal/observability"
	"github.com/tenx-mn/catering-service/internal/persistence"
	"github.com/tenx-mn/catering-service/internal/repository"
	"github.com/tenx-mn/catering-service/internal/service"
)

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

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := persistence.OpenDatabase(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer db.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, db.Pool(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	if err := seed(ctx, cfg, repository.NewPostgresStore(db.Pool()), logger); err != nil {
		logger.Fatal("failed to seed admin", zap.Error(err))
	}
}

// seed hashes with the same configured cost as the API server.
func seed(ctx context.Context, cfg *config.Config, store repository.Store, logger *zap.Logger) error {
	created, err := service.SeedAdmin(ctx, store,
		auth.NewHasher(cfg.Auth.BcryptCost),
		cfg.Seed.AdminEmail,
		cfg.Seed.AdminPassword,
		cfg.Seed.AdminName,
	)
	if err != nil {
		return err
	}
	email := service.NormalizeEmail(cfg.Seed.AdminEmail)
	if !created {
		logger.Info("admin already exists, nothing to do", zap.String("email", email))
		return nil
	}
	logger.Info("admin created", zap.String("email", email), zap.Int("bcrypt_cost", cfg.Auth.BcryptCost))
	if cfg.Seed.AdminPasswordIsDefault {
		logger.Warn("admin uses the default password; change it after the first login")
	}
	return nil
}
