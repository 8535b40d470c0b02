package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/safinity/safinity/internal/pkg/config"
	"github.com/safinity/safinity/internal/pkg/database"
	"github.com/safinity/safinity/internal/pkg/health"
	"github.com/safinity/safinity/internal/pkg/logger"
	"github.com/safinity/safinity/internal/pkg/middleware"
	"github.com/safinity/safinity/internal/pkg/ratelimit"
	"github.com/safinity/safinity/internal/pkg/retry"
	"github.com/safinity/safinity/internal/pkg/server"
	"github.com/safinity/safinity/internal/pkg/sms"
	accountHandler "github.com/safinity/safinity/services/account/handler"
	accountHTTP "github.com/safinity/safinity/services/account/handler/http"
	accountRepo "github.com/safinity/safinity/services/account/repository"
	accountUsecase "github.com/safinity/safinity/services/account/usecase"
	alertHandler "github.com/safinity/safinity/services/alert/handler"
	alertHTTP "github.com/safinity/safinity/services/alert/handler/http"
	alertNSQ "github.com/safinity/safinity/services/alert/handler/nsq"
	alertUsecase "github.com/safinity/safinity/services/alert/usecase"
)

func main() {
	appName := "safinity"
	configPath := "config/safinity.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL, retrying while the database comes up
	var postgresClient *database.PostgresClient
	retrier := retry.NewWithDefaults()
	err = retrier.Execute(context.Background(), "postgres-connect", func(ctx context.Context) error {
		var connErr error
		postgresClient, connErr = database.NewPostgresClient(configs.Database)
		return connErr
	})
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

	// Initialize repository
	repo := accountRepo.NewAccountRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize SMS gateway and login limiter
	smsClient := sms.NewVeevotechClient(configs.SMS)
	limiter := ratelimit.NewLoginLimiter(redisClient,
		configs.RateLimit.MaxAttempts,
		time.Duration(configs.RateLimit.WindowSecs)*time.Second)

	// Initialize use cases; the account repository also serves alert lookups
	accountUC := accountUsecase.NewAccountUC(configs, repo, smsClient, limiter)
	alertUC := alertUsecase.NewAlertUC(configs, repo, smsClient, nil)

	// Handlers for HTTP
	authHandler := accountHTTP.NewAuthHandler(accountUC)
	profileHandler := accountHTTP.NewProfileHandler(accountUC)
	dispatchHandler := alertHTTP.NewAlertHandler(alertUC)

	// Handler for NSQ device events
	deviceHandler := alertNSQ.NewDeviceEventHandler(alertUC)

	accounts := accountHandler.NewHandler(authHandler, profileHandler, configs)
	alerts := alertHandler.NewHandler(dispatchHandler, deviceHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes; alert dispatch sits behind the same JWT
	// middleware as the account routes
	accounts.RegisterRoutes(e)
	alerts.RegisterRoutes(e, accounts.GetJWTMiddleware())

	// Subscribe to the panic-button event bridge when one is configured
	if configs.NSQ.Address != "" {
		if err := alerts.StartDeviceConsumer(); err != nil {
			zapLogger.Fatal("Failed to start device event consumer", logger.Err(err))
		}
		defer alerts.Stop()
	}

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
