package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"odontoflash-api/config"
	deliveryHttp "odontoflash-api/internal/delivery/http"
	"odontoflash-api/internal/delivery/http/handler"
	"odontoflash-api/internal/delivery/http/middleware"
	"odontoflash-api/internal/fixture"
	"odontoflash-api/internal/infrastructure/cache"
	"odontoflash-api/internal/infrastructure/database"
	"odontoflash-api/internal/repository"
	"odontoflash-api/internal/service"
	"odontoflash-api/internal/usecase"
	"odontoflash-api/pkg/jwt"
	"odontoflash-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds the wired application.
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	RatingCache *service.RatingCacheService
}

// New initializes configuration, storage, cache and the HTTP server.
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	if cfg.App.Env == "development" {
		if err := fixture.Seed(db, logrus.StandardLogger()); err != nil {
			logrus.Warnf("Demo data seeding failed: %v", err)
		}
	}

	app.Server, app.RatingCache = initializeServer(cfg, db, redisClient)

	return app, nil
}

func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.RatingCacheService) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	studentProfileRepo := repository.NewStudentProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	reviewRepo := repository.NewReviewRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)
	ratingCache := service.NewRatingCacheService(db, redisClient, log, reviewRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientProfileRepo, studentProfileRepo, jwtService, redisClient, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, userRepo, auditService)
	directoryUsecase := usecase.NewDirectoryUsecase(db, log, patientProfileRepo, studentProfileRepo, ratingCache)
	reviewUsecase := usecase.NewReviewUsecase(db, log, reviewRepo, userRepo, ratingCache, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	directoryHandler := handler.NewDirectoryHandler(directoryUsecase)
	reviewHandler := handler.NewReviewHandler(reviewUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	rateLimiter := middleware.NewRateLimiter(5, 10)

	router := deliveryHttp.NewRouter(
		authHandler, appointmentHandler, directoryHandler, reviewHandler, auditLogHandler,
		authMiddleware, corsMiddleware, rateLimiter,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, ratingCache
}

// Run warms the rating cache, starts the HTTP server and blocks until an
// interrupt triggers graceful shutdown.
func (app *App) Run() {
	warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := app.RatingCache.SyncOnStartup(warmCtx); err != nil {
		logrus.Warnf("Rating cache warmup failed, serving from database: %v", err)
	}
	cancel()

	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases database and Redis connections.
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
