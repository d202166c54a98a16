package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cashlink/cashlink/internal/pkg/config"
	"github.com/cashlink/cashlink/internal/pkg/database"
	"github.com/cashlink/cashlink/internal/pkg/health"
	"github.com/cashlink/cashlink/internal/pkg/logger"
	"github.com/cashlink/cashlink/internal/pkg/middleware"
	"github.com/cashlink/cashlink/internal/pkg/nats"
	nrpkg "github.com/cashlink/cashlink/internal/pkg/newrelic"
	moderationGW "github.com/cashlink/cashlink/services/moderation/gateway"
	moderationHandler "github.com/cashlink/cashlink/services/moderation/handler"
	moderationRepo "github.com/cashlink/cashlink/services/moderation/repository"
	moderationUC "github.com/cashlink/cashlink/services/moderation/usecase"
	ridesGW "github.com/cashlink/cashlink/services/rides/gateway"
	ridesHandler "github.com/cashlink/cashlink/services/rides/handler"
	ridesRepo "github.com/cashlink/cashlink/services/rides/repository"
	ridesUC "github.com/cashlink/cashlink/services/rides/usecase"
	txGW "github.com/cashlink/cashlink/services/transactions/gateway"
	txHandler "github.com/cashlink/cashlink/services/transactions/handler"
	txRepo "github.com/cashlink/cashlink/services/transactions/repository"
	txUC "github.com/cashlink/cashlink/services/transactions/usecase"
)

func main() {
	appName := "cashlink"
	configPath := "config/cashlink.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Load the fee structure shared by transactions and rides
	feeStructure, err := config.LoadFeeStructure(configs.Fees.StructurePath)
	if err != nil {
		zapLogger.Warn("Falling back to default fee structure", logger.Err(err))
	}

	db := postgresClient.GetDB()

	// Transactions service
	transactionRepo := txRepo.NewTransactionRepository(configs, db)
	transactionGW := txGW.NewTransactionGW(natsClient)
	transactionUC := txUC.NewTransactionUC(configs, feeStructure, transactionRepo, transactionGW)
	transactionsHandler := txHandler.NewHandler(transactionUC, configs)

	// Rides service
	rideRepo := ridesRepo.NewRideRepository(configs, db)
	locationRepo := ridesRepo.NewLocationRepository(configs, redisClient)
	rideGW := ridesGW.NewRideGW(natsClient)
	rideUC := ridesUC.NewRideUC(configs, feeStructure, rideRepo, locationRepo, rideGW)
	rideHandler := ridesHandler.NewHandler(rideUC, natsClient, configs)

	// Moderation service
	contentRepo := moderationRepo.NewContentRepository(configs, db)
	modGW := moderationGW.NewModerationGW(natsClient)
	modUC := moderationUC.NewModerationUC(configs, contentRepo, modGW)
	modHandler := moderationHandler.NewHandler(modUC, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Health endpoints
	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	transactionsHandler.RegisterRoutes(e)
	rideHandler.RegisterRoutes(e)
	modHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing PostgreSQL connection...")
	postgresClient.Close()

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
