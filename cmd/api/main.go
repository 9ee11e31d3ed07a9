package main

// @title Trip Microservice API
// @version 1.0.0
// @description Backend for trip planning between Indian cities. Resolves city names
// @description to railway station codes (static table with a generative fallback),
// @description searches trains across two providers with automatic failover and
// @description returns transport options for train, car, bus and flight.

// @contact.name API Support
// @contact.email support@trip-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/trip-microservice/docs/swagger"
	"github.com/trip-microservice/internal/config"
	httpDelivery "github.com/trip-microservice/internal/delivery/http"
	"github.com/trip-microservice/internal/delivery/http/handler"
	"github.com/trip-microservice/internal/infrastructure/aerodata"
	"github.com/trip-microservice/internal/infrastructure/gemini"
	"github.com/trip-microservice/internal/infrastructure/railrapid"
	"github.com/trip-microservice/internal/infrastructure/traininfo"
	"github.com/trip-microservice/internal/pkg/logger"
	"github.com/trip-microservice/internal/repository/cache"
	"github.com/trip-microservice/internal/repository/postgres"
	redisRepo "github.com/trip-microservice/internal/repository/redis"
	"github.com/trip-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "trip-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Trip Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and external clients
	tripRepo := postgres.NewTripRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	generativeClient := gemini.NewClient(&cfg.Gemini, log)
	primaryProvider := railrapid.NewClient(&cfg.RailAPI, log)
	fallbackProvider := traininfo.NewClient(&cfg.TrainInfo, log)
	flightClient := aerodata.NewClient(&cfg.RapidAPI, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	resolver := usecase.NewStationResolver(generativeClient, log)
	trainSearchUC := usecase.NewTrainSearchUseCase(primaryProvider, fallbackProvider, log)
	tripUC := usecase.NewTripUseCase(resolver, trainSearchUC, tripRepo, streamRepo, log)
	flightUC := usecase.NewFlightUseCase(flightClient, cacheRepo, log, cfg.Cache.FlightsCacheTTL)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	tripHandler := handler.NewTripHandler(tripUC, log)
	transportHandler := handler.NewTransportHandler(flightUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tripHandler,
		transportHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
