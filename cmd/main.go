package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"ad-orchestrator/internal/adapter/analytics"
	"ad-orchestrator/internal/adapter/bidding"
	"ad-orchestrator/internal/adapter/creative"
	httpadapter "ad-orchestrator/internal/adapter/http"
	"ad-orchestrator/internal/adapter/postgres"
	"ad-orchestrator/internal/adapter/targeting"
	"ad-orchestrator/internal/adapter/usecase"
	"ad-orchestrator/internal/config"
	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/db"
)

// main is the entry point of the orchestrator. It loads configuration,
// optionally runs database migrations, initializes the event store and the
// campaign manager with its collaborators, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	// A local .env fills in variables not already set in the environment.
	_ = godotenv.Load()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	events := postgres.NewEventRepository(pool)
	manager := usecase.NewCampaignManager(
		creative.NewFactory(),
		targeting.NewTargeter(),
		bidding.NewFactory(),
		analytics.NewAnalyzer(events),
		logger,
	)

	if cfg.Psql.SeedDemo {
		if err = seedDemo(ctx, pool, manager); err != nil {
			logger.Error("demo seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	handler := httpadapter.NewHandler(manager, events, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// seedDemo creates one demo campaign per platform and backfills delivery
// events for each so the analyzer has data to report immediately.
func seedDemo(ctx context.Context, pool *pgxpool.Pool, manager *usecase.CampaignManager) error {
	cfg := domain.CampaignConfig{
		TextTemplate: "Try it today. {cta}",
		ImageOptions: &domain.ImageOptions{Source: "https://cdn.example.com/demo.png"},
		Targeting:    domain.TargetingSpec{Geos: []string{"us"}, Interests: []string{"tech"}},
		CallToAction: "Shop now",
		LandingURL:   "https://example.com/landing",
	}
	var ids []string
	for _, p := range domain.Platforms() {
		id, err := manager.CreateCampaign(ctx, p.String(), cfg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	return db.Seed(ctx, pool, ids)
}
