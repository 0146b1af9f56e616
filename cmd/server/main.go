package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/execsec/backoffice/internal/adapter/http"
	"github.com/execsec/backoffice/internal/adapter/http/handler"
	postgresRepo "github.com/execsec/backoffice/internal/adapter/repository/postgres"
	redisRepo "github.com/execsec/backoffice/internal/adapter/repository/redis"
	"github.com/execsec/backoffice/internal/adapter/storage"
	"github.com/execsec/backoffice/internal/adapter/ws"
	"github.com/execsec/backoffice/internal/infrastructure/auth"
	"github.com/execsec/backoffice/internal/infrastructure/config"
	"github.com/execsec/backoffice/internal/infrastructure/logger"
	"github.com/execsec/backoffice/internal/infrastructure/mailer"
	"github.com/execsec/backoffice/internal/infrastructure/metrics"
	"github.com/execsec/backoffice/internal/infrastructure/postgres"
	"github.com/execsec/backoffice/internal/infrastructure/redis"
	"github.com/execsec/backoffice/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Connect to object storage
	objectStore, err := storage.NewObjectStore(ctx, storage.Config{
		Endpoint:        cfg.StorageEndpoint,
		AccessKeyID:     cfg.StorageAccessKey,
		SecretAccessKey: cfg.StorageSecretKey,
		Bucket:          cfg.StorageBucket,
		UseSSL:          cfg.StorageUseSSL,
		Region:          cfg.StorageRegion,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to object storage")
	}
	log.Info().Str("bucket", cfg.StorageBucket).Msg("connected to object storage")

	// Websocket hub for export progress
	hub := ws.NewHub(log, cfg.WSAllowedOrigins)
	go hub.Run(ctx)

	appMetrics := metrics.New()

	// Initialize repositories and stores
	txManager := postgresRepo.NewTxManager(pool, log)
	tenantRepo := postgresRepo.NewTenantRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	executiveRepo := postgresRepo.NewExecutiveRepository(pool)
	payableRepo := postgresRepo.NewPayableRepository(pool)
	taskRepo := postgresRepo.NewTaskRepository(pool)
	meetingRepo := postgresRepo.NewMeetingRepository(pool)
	catalogRepo := postgresRepo.NewCatalogRepository(pool)
	notificationRepo := postgresRepo.NewNotificationRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	exportStore := redisRepo.NewExportStore(redisClient)
	personStore := redisRepo.NewPersonStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	smtpMailer := mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.SMTPFrom,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
	})

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Initialize use cases
	tenantUC := usecase.NewTenantUseCase(tenantRepo, executiveRepo, payableRepo, txManager)
	userUC := usecase.NewUserUseCase(userRepo, tenantRepo, jwtManager)
	executiveUC := usecase.NewExecutiveUseCase(executiveRepo)
	payableUC := usecase.NewPayableUseCase(payableRepo, executiveRepo, objectStore, cache)
	exportUC := usecase.NewExportUseCase(payableRepo, exportStore, objectStore, hub, idGen, log)
	taskUC := usecase.NewTaskUseCase(taskRepo, meetingRepo)
	meetingUC := usecase.NewMeetingUseCase(meetingRepo, executiveRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	personUC := usecase.NewPersonUseCase(personStore, idGen)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, smtpMailer, idGen, log)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:         handler.NewAuthHandler(userUC),
		TenantHandler:       handler.NewTenantHandler(tenantUC),
		UserHandler:         handler.NewUserHandler(userUC),
		ExecutiveHandler:    handler.NewExecutiveHandler(executiveUC),
		PayableHandler:      handler.NewPayableHandler(payableUC),
		ExportHandler:       handler.NewExportHandler(exportUC),
		CatalogHandler:      handler.NewCatalogHandler(catalogUC),
		PersonHandler:       handler.NewPersonHandler(personUC),
		TaskHandler:         handler.NewTaskHandler(taskUC),
		MeetingHandler:      handler.NewMeetingHandler(meetingUC),
		NotificationHandler: handler.NewNotificationHandler(notificationUC),
		HealthHandler:       handler.NewHealthHandler(pool, redisClient),
		JWTManager:          jwtManager,
		IdempotencyStore:    idempotencyStore,
		IdempotencyTTL:      cfg.IdempotencyTTL,
		Hub:                 hub,
		Metrics:             appMetrics,
		Logger:              log,
		RateLimit:           cfg.RateLimitRPS,
		RateLimitBurst:      cfg.RateLimitBurst,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
