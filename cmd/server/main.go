package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"truestate/internal/bootstrap"
	"truestate/internal/config"
	"truestate/internal/middleware"
	"truestate/internal/observability"
	"truestate/internal/server"
	"truestate/internal/services"
	"truestate/internal/validation"

	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	storeOpenTimeout     = 30 * time.Second
	datasetLoadTimeout   = 2 * time.Minute
	refreshTimeout       = 30 * time.Second
	limiterCleanupPeriod = time.Minute
	syntheticRows        = 1000
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env file", "error", err)
	}

	cfg := config.Load()
	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("application stopped gracefully")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting application",
		"environment", cfg.Server.Environment,
		"store", cfg.Store.Driver,
		"address", cfg.Address(),
	)

	openCtx, cancelOpen := context.WithTimeout(ctx, storeOpenTimeout)
	store, err := bootstrap.OpenStore(openCtx, cfg, logger)
	cancelOpen()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)
	queryLogger := services.NewQueryLogger(logger)

	if store.Driver == config.StoreDriverMemory {
		loadCtx, cancelLoad := context.WithTimeout(ctx, datasetLoadTimeout)
		err := loadMemoryDataset(loadCtx, cfg, store, metrics, queryLogger, logger)
		cancelLoad()
		if err != nil {
			_ = store.Close(context.Background())
			return err
		}
	}
	if count, err := store.Repository.Count(ctx); err == nil {
		metrics.RecordGauge(services.MetricDatasetSize, float64(count), nil)
		logger.Info("transaction store ready", "driver", store.Driver, "transactions", count)
	} else {
		logger.Warn("failed to count transactions", "error", err)
	}

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.Query.StoreFailureThreshold,
		ResetTimeout:    cfg.Query.StoreFailureResetAfter,
		HalfOpenMaxSucc: 1,
	})
	transactionService := services.NewTransactionService(store.Repository, breaker, metrics, queryLogger)
	filterOptionsService := services.NewFilterOptionsService(store.Repository, metrics, queryLogger)

	var scheduler *gocron.Scheduler
	if cfg.Query.FilterOptionsRefresh > 0 {
		scheduler, err = services.StartFilterOptionsRefresh(filterOptionsService, cfg.Query.FilterOptionsRefresh, refreshTimeout, logger)
		if err != nil {
			_ = store.Close(context.Background())
			return err
		}
	} else {
		logger.Info("filter options refresh disabled")
	}

	rateLimiter := middleware.NewRateLimiter(cfg.Security)
	rateLimiter.StartCleanup(ctx, limiterCleanupPeriod)

	router := server.NewRouter(server.RouterDeps{
		Transactions:     transactionService,
		FilterOptions:    filterOptionsService,
		Normalizer:       validation.NewNormalizer(cfg.Query.DefaultLimit, cfg.Query.MaxLimit),
		RateLimiter:      rateLimiter,
		Registry:         registry,
		Logger:           logger,
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
	})

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg.Server.ShutdownTimeout)
	gracefulServer.RegisterShutdownHook("transaction store", store.Close)
	if scheduler != nil {
		gracefulServer.RegisterShutdownHook("filter options refresh", func(context.Context) error {
			scheduler.Stop()
			return nil
		})
	}

	return gracefulServer.Run(ctx)
}

// loadMemoryDataset fills the in-process store from the CSV file, or with
// synthetic rows when the file is absent.
func loadMemoryDataset(
	ctx context.Context,
	cfg *config.Config,
	store *bootstrap.Store,
	metrics services.MetricsRecorderInterface,
	queryLogger services.QueryLoggerInterface,
	logger *slog.Logger,
) error {
	importer := services.NewCSVImporter(store.Repository, cfg.Import.BatchSize, metrics, queryLogger)

	file, err := os.Open(cfg.Import.CSVFilePath)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("dataset file not found, generating synthetic transactions",
			"path", cfg.Import.CSVFilePath,
			"rows", syntheticRows,
		)
		end := time.Now().UTC().Truncate(24 * time.Hour)
		generator := services.NewTransactionGenerator(uint64(end.Unix()), end.AddDate(-1, 0, 0), end)
		_, err := importer.Load(ctx, generator.Generate(syntheticRows))
		return err
	}
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = importer.Import(ctx, file)
	return err
}
