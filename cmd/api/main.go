package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charity-ledger-gateway/config"
	"charity-ledger-gateway/internal/adapter/chain"
	httpHandler "charity-ledger-gateway/internal/adapter/http/handler"
	pgStorage "charity-ledger-gateway/internal/adapter/storage/postgres"
	redisStorage "charity-ledger-gateway/internal/adapter/storage/redis"
	"charity-ledger-gateway/internal/core/ports"
	"charity-ledger-gateway/internal/service"
	"charity-ledger-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Int64("chain_id", cfg.Chain.ChainID).
		Msg("Starting Charity Ledger Gateway")

	ctx := context.Background()

	// Load the contract schema. Without it no call can be encoded, so a
	// missing or malformed artifact is fatal.
	schema, err := chain.LoadSchema(cfg.Chain.ABIPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Chain.ABIPath).Msg("Failed to load contract schema")
	}

	connector := chain.NewConnector(cfg.Chain, schema, log)

	var healthCheckers []ports.HealthChecker

	// Audit persistence is optional: without PostgreSQL, write audits go to
	// the log only.
	var auditRepo ports.AuditRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		auditRepo = pgStorage.NewAuditRepository(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	// Rate limiting is optional: without Redis the API runs unthrottled.
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize business services
	sessionSvc := service.NewSessionService(connector, log)
	aggregatorSvc := service.NewAggregatorService(sessionSvc, log)
	auditSvc := service.NewAuditService(auditRepo, log)
	gatewaySvc := service.NewGatewayService(
		sessionSvc,
		aggregatorSvc,
		auditSvc,
		cfg.Chain.ChainID,
		cfg.Chain.ContractAddress,
		log,
	)
	reconciler := service.NewReconciler(sessionSvc, aggregatorSvc, log)
	mediaStore := service.NewMediaService(log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		GatewaySvc:     gatewaySvc,
		AggregatorSvc:  aggregatorSvc,
		Reconciler:     reconciler,
		MediaStore:     mediaStore,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// Warm-up: bind a session and run one aggregation pass so the dashboard
	// has data before the first operator request. Best effort, the API works
	// without it.
	go func() {
		warmCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if _, err := sessionSvc.Connect(warmCtx); err != nil {
			log.Warn().Err(err).Msg("Startup session connect failed, waiting for operator")
			return
		}
		if err := reconciler.Attach(warmCtx); err != nil {
			log.Warn().Err(err).Msg("Startup reconciler attach failed")
		}
		if _, err := aggregatorSvc.Refresh(warmCtx); err != nil {
			log.Warn().Err(err).Msg("Startup aggregation pass failed")
		}
	}()

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

	reconciler.Detach()
	sessionSvc.Disconnect()

	log.Info().Msg("Server exited")
}
