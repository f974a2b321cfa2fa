// Command server runs the pediatric ultrasound report composition service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/sono-report-server/internal/api"
	"github.com/sono-report-server/internal/catalog"
	"github.com/sono-report-server/internal/config"
	"github.com/sono-report-server/internal/database"
	"github.com/sono-report-server/internal/logging"
	"github.com/sono-report-server/internal/service"
	"github.com/sono-report-server/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	manager, err := config.NewManager()
	if err != nil {
		return err
	}
	if err := manager.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg := manager.GetConfig()

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	cat, err := catalog.New()
	if err != nil {
		return fmt.Errorf("loading exam template catalog: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("opening report store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.WithError(err).Warn("Failed to close report store")
		}
	}()

	reports, err := service.NewReportService(st, cat, log, cfg.Cache.RenderedDocs)
	if err != nil {
		return err
	}

	server := api.NewServer(cfg, reports, log)

	log.WithFields(logrus.Fields{
		"host":    cfg.Server.Host,
		"port":    cfg.Server.Port,
		"backend": cfg.Storage.Backend,
	}).Info("Starting report server")

	if err := server.Start(ctx); err != nil {
		return err
	}

	log.Info("Server stopped")
	return nil
}

// openStore builds the report store selected by the configuration. The
// postgres backend applies pending migrations before the pool is handed to
// the store.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (store.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return store.NewSQLiteStore(cfg.Storage.SQLitePath)

	case config.BackendPostgres:
		runner, err := database.NewMigrationRunner(cfg.Storage.DatabaseURL, cfg.Storage.MigrationsPath, log)
		if err != nil {
			return nil, err
		}
		if err := runner.Up(); err != nil {
			runner.Close()
			return nil, err
		}
		if err := runner.Close(); err != nil {
			log.WithError(err).Warn("Failed to close migration runner")
		}
		return store.NewPostgresStoreFromURL(cfg.Storage.DatabaseURL)

	case config.BackendRedis:
		return store.NewRedisStore(ctx, cfg.Storage.RedisURL, cfg.Storage.RedisKey)

	case config.BackendMemory:
		return store.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
