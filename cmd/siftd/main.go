package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sift-search/sift"
	"github.com/sift-search/sift/internal/config"
	logpkg "github.com/sift-search/sift/internal/logger"
	"github.com/sift-search/sift/internal/metrics"
	chiTransport "github.com/sift-search/sift/internal/transport/chi"
	"github.com/sift-search/sift/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting sift search server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
	)

	// Register Prometheus metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterSearchMetrics()

	engine, err := buildEngine(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build engine", zap.Error(err))
	}

	server := chiTransport.NewServer(engine, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiTransport.RequestIDMiddleware())
	r.Use(chiTransport.AccessLogMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildEngine wires the search engine from configuration.
func buildEngine(cfg config.Config, logger *zap.Logger) (*sift.Engine, error) {
	seed, err := cfg.SeedItems()
	if err != nil {
		return nil, fmt.Errorf("load seed corpus: %w", err)
	}

	items := make([]sift.Item, 0, len(seed))
	for _, s := range seed {
		items = append(items, sift.Item{
			ID:           s.ID,
			Title:        s.Title,
			Description:  s.Description,
			Content:      s.Content,
			Category:     s.Category,
			Tags:         s.Tags,
			URL:          s.URL,
			Metadata:     s.Metadata,
			SearchWeight: s.SearchWeight,
		})
	}

	engine, err := sift.New(
		sift.WithLogger(logger),
		sift.WithItems(items),
		sift.WithFieldWeights(sift.FieldWeights{
			Title:       cfg.Search.TitleWeight,
			Description: cfg.Search.DescriptionWeight,
			Content:     cfg.Search.ContentWeight,
			Tags:        cfg.Search.TagsWeight,
			Category:    cfg.Search.CategoryWeight,
		}),
		sift.WithFuzzyThreshold(cfg.Search.FuzzyThreshold),
		sift.WithDictionary(cfg.Suggest.Dictionary),
		sift.WithCompletions(cfg.Suggest.Completions),
		sift.WithPopularQueries(cfg.Suggest.Popular),
		sift.WithCorrectionBand(cfg.Suggest.CorrectionMin, cfg.Suggest.CorrectionMax),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("Engine ready",
		zap.Int("seed_items", len(items)),
		zap.Int("dictionary_terms", len(cfg.Suggest.Dictionary)),
	)
	return engine, nil
}
