package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-backoffice/config"
	busAdapter "bank-backoffice/internal/adapter/bus/redisbus"
	httpHandler "bank-backoffice/internal/adapter/http/handler"
	pgStorage "bank-backoffice/internal/adapter/storage/postgres"
	redisStorage "bank-backoffice/internal/adapter/storage/redis"
	"bank-backoffice/internal/core/ports"
	"bank-backoffice/internal/saga"
	"bank-backoffice/internal/service"
	"bank-backoffice/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("account-api", cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting account service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	reportStore := redisStorage.NewReportStore(rdb, cfg.Report.TTL)
	dedupeStore := redisStorage.NewDedupeStore(rdb)

	// Initialize message bus
	bus := busAdapter.New(rdb, cfg.Bus.BlockTimeout, log)
	defer bus.Close()

	// Initialize business services
	accountSvc := service.NewAccountService(accountRepo, log)
	ledgerSvc := service.NewLedgerService(accountRepo, txRepo, transactor, log)
	aggregator := service.NewReportAggregator(accountRepo, txRepo)
	dispatcher := saga.NewDispatcher(bus, log)
	reportSvc := service.NewReportService(dispatcher, reportStore, log)

	// Register saga stages owned by this service
	builder := saga.NewBuilder(aggregator, bus, dedupeStore, cfg.Bus.DedupeTTL, log)
	if err := builder.Register(bus, cfg.Bus.Group); err != nil {
		log.Fatal().Err(err).Msg("Failed to subscribe report builder")
	}
	collector := saga.NewCollector(reportStore, log)
	if err := collector.Register(bus, cfg.Bus.Group); err != nil {
		log.Fatal().Err(err).Msg("Failed to subscribe report collector")
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupAccountRouter(httpHandler.AccountRouterDeps{
		AccountSvc:     accountSvc,
		LedgerSvc:      ledgerSvc,
		ReportSvc:      reportSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
