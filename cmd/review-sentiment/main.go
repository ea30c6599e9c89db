package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"amazon-review-sentiment/internal/app"
	"amazon-review-sentiment/internal/cache/redis"
	"amazon-review-sentiment/internal/config"
	"amazon-review-sentiment/internal/observability"
	"amazon-review-sentiment/internal/renderer"
	"amazon-review-sentiment/internal/scraper"
	"amazon-review-sentiment/internal/sentiment"
	"amazon-review-sentiment/internal/server"
	"amazon-review-sentiment/internal/storage"
	"amazon-review-sentiment/internal/storage/s3"
	"amazon-review-sentiment/internal/urls"
)

func main() {
	// AWS and Redis credentials come from the environment; .env is optional.
	_ = godotenv.Load()

	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := observability.NewLogger(cfg.Observability.LogPath, cfg.Observability.LogLevel)

	selectors, err := cfg.LoadRetailerSelectors()
	if err != nil {
		log.Fatalf("Failed to load selectors: %v", err)
	}

	objectStore, err := s3.NewStore(context.Background(), cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint)
	if err != nil {
		log.Fatalf("Failed to init object store: %v", err)
	}
	persister := storage.NewPersister(objectStore, logger, cfg.GetUploadTimeout())

	cacheStore, err := redis.NewStore(cfg.Cache.Addr, os.Getenv("REDIS_PASSWORD"), cfg.Cache.DB)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer func() {
		if err := cacheStore.Close(); err != nil {
			logger.Error("Failed to close redis client", "error", err.Error())
		}
	}()

	normalizer := urls.NewNormalizer(
		cfg.Retailer.Domain,
		cfg.Retailer.ProductPathSegment,
		cfg.Retailer.ReviewPathSegment,
		cfg.Retailer.ReviewQuerySuffix,
	)

	analyzer := app.NewAnalyzer(
		logger,
		normalizer,
		renderer.NewRodFactory(cfg.Rod.Headless, cfg.Rod.ChromePath, cfg.GetRodPageTimeout()),
		scraper.NewScraper(selectors, cfg.Pagination.MaxPages, logger),
		sentiment.NewAnalyzer(),
		persister,
		cacheStore,
		cfg.GetReportTTL(),
	)

	srv := server.New(cfg, logger, analyzer, persister)

	ctx, cancel := app.GracefulShutdown(logger)
	defer cancel()

	go func() {
		logger.Info("Server listening", "addr", cfg.Server.Addr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped", "error", err.Error())
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err.Error())
	}

	// Let fire-and-forget artifact uploads drain before exiting.
	persister.Wait()
	logger.Info("Server stopped")
}
