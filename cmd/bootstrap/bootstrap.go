package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinica-ginecologica/config"
	deliveryHttp "clinica-ginecologica/internal/delivery/http"
	"clinica-ginecologica/internal/delivery/http/handler"
	"clinica-ginecologica/internal/delivery/http/middleware"
	"clinica-ginecologica/internal/delivery/http/view"
	"clinica-ginecologica/internal/infrastructure/cache"
	"clinica-ginecologica/internal/infrastructure/database"
	"clinica-ginecologica/internal/repository"
	"clinica-ginecologica/internal/service"
	"clinica-ginecologica/internal/usecase"
	"clinica-ginecologica/pkg/jwt"
	"clinica-ginecologica/pkg/metrics"
	"clinica-ginecologica/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const metricsNamespace = "clinica"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg, Log: NewLogger(cfg.Log)}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env == "development")
	if err != nil {
		return nil, err
	}
	app.DB = db

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(cfg.DB, app.Log); err != nil {
			app.Close()
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	httpHandler, err := NewHandler(cfg, db, redisClient, app.Log, metrics.NewCollector(metricsNamespace))
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// NewLogger configures the shared logrus logger
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// NewHandler wires repositories, services, usecases and handlers into the routed HTTP handler.
func NewHandler(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger, collector *metrics.Collector) (http.Handler, error) {
	loc := cfg.App.Location()

	jwtService := jwt.NewJWTService(cfg.Session)
	customValidator := validator.NewValidator()

	renderer, err := view.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	consultationTypeRepo := repository.NewConsultationTypeRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	historyRepo := repository.NewHistoryRepository()
	reminderRepo := repository.NewReminderRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	slotLockService := service.NewSlotLockService(redisClient, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, loc, patientRepo, auditService, jwtService, redisClient, collector)
	profileUsecase := usecase.NewPatientProfileUsecase(db, log, loc, patientRepo, auditLogRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, loc, appointmentRepo, reminderRepo, doctorRepo, consultationTypeRepo, historyRepo, auditService, slotLockService, collector)
	reminderUsecase := usecase.NewReminderUsecase(db, log, loc, reminderRepo, auditService, collector)
	historyUsecase := usecase.NewHistoryUsecase(db, log, loc, historyRepo, doctorRepo)
	reportUsecase := usecase.NewReportUsecase(db, log, loc, appointmentRepo, historyRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, loc, patientRepo, appointmentRepo, reminderRepo, historyRepo, doctorRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, renderer, log, cfg.Session)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, reportUsecase, renderer)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator, renderer)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator, renderer)
	historyHandler := handler.NewHistoryHandler(historyUsecase, renderer)
	reminderHandler := handler.NewReminderHandler(reminderUsecase, customValidator, renderer)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient, log, cfg.Session.CookieName)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware(collector)
	recoverMiddleware := middleware.NewRecoverMiddleware(log, http.HandlerFunc(renderer.InternalError))

	router := deliveryHttp.NewRouter(
		renderer,
		collector,
		authHandler,
		dashboardHandler,
		profileHandler,
		appointmentHandler,
		historyHandler,
		reminderHandler,
		healthHandler,
		authMiddleware,
		loggingMiddleware,
		metricsMiddleware,
		recoverMiddleware,
	)

	return router.Setup(), nil
}

// Run starts the HTTP server and blocks until shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
