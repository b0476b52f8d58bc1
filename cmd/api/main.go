package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BidziilBey/justicefund-exchange/config"
	httpHandler "github.com/BidziilBey/justicefund-exchange/internal/adapter/http/handler"
	memStorage "github.com/BidziilBey/justicefund-exchange/internal/adapter/storage/memory"
	pgStorage "github.com/BidziilBey/justicefund-exchange/internal/adapter/storage/postgres"
	redisStorage "github.com/BidziilBey/justicefund-exchange/internal/adapter/storage/redis"
	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
	"github.com/BidziilBey/justicefund-exchange/internal/core/ports"
	"github.com/BidziilBey/justicefund-exchange/internal/ledger"
	"github.com/BidziilBey/justicefund-exchange/internal/service"
	"github.com/BidziilBey/justicefund-exchange/pkg/logger"
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
		Msg("Starting JusticeFund Exchange")

	if cfg.Owner.Identity == "" {
		log.Fatal().Msg("owner.identity must be configured (JFX_OWNER_IDENTITY)")
	}
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret must be configured (JFX_JWT_SECRET)")
	}

	ctx := context.Background()

	var sinks []ports.EventSink
	var healthCheckers []ports.HealthChecker

	// Optional PostgreSQL event journal
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		sinks = append(sinks, pgStorage.NewEventJournal(pool))
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL event journal enabled")
	}

	// Optional Redis event stream
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		sinks = append(sinks, redisStorage.NewEventStream(rdb, cfg.Redis.Stream))
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		log.Info().Str("stream", cfg.Redis.Stream).Msg("Redis event stream enabled")
	}

	// The ledger and the auth service share one access policy, so an
	// ownership transfer immediately changes who may issue credentials.
	policy := ledger.NewOwnerPolicy(cfg.Owner.Identity)

	opts := []ledger.Option{
		ledger.WithAccessPolicy(policy),
		ledger.WithLogger(log),
		ledger.WithEventSinks(sinks...),
	}
	if cfg.Ledger.StrictTransitions {
		opts = append(opts, ledger.WithStrictTransitions())
		log.Info().Msg("Strict status transitions enabled")
	}
	ldg := ledger.New(cfg.Owner.Identity, opts...)

	// Core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	credRepo := memStorage.NewCredentialRepo()
	authSvc := service.NewAuthService(credRepo, policy, hashSvc, tokenSvc)

	// Seed the owner's credential so the owner can log in from a cold
	// start. The API key comes from config and is never logged.
	if cfg.Owner.APIKey != "" {
		keyHash, err := hashSvc.Hash(cfg.Owner.APIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash owner API key")
		}
		err = credRepo.Create(ctx, &domain.Credential{
			Identity:   cfg.Owner.Identity,
			APIKeyHash: keyHash,
			IssuedBy:   cfg.Owner.Identity,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed owner credential")
		}
		log.Info().Str("identity", cfg.Owner.Identity).Msg("Owner credential seeded")
	} else {
		log.Warn().Msg("owner.api_key not set, owner cannot log in until a credential is issued")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ldg,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: healthCheckers,
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
