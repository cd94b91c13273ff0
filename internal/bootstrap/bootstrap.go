package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/controllers"
	appMigrations "github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/migrations"
	appRepos "github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/repositories"
	appRoutes "github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/routes"
	appServices "github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/services"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/config"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/db"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/email"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/helpers"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/logger"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	JobService             appServices.JobService
	ApplicationService     appServices.ApplicationService
	ReferenceService       appServices.ReferenceService
	NotificationService    appServices.NotificationService
	AdminService           appServices.AdminService
	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	JobController          *appControllers.JobController
	ApplicationController  *appControllers.ApplicationController
	ReferenceController    *appControllers.ReferenceController
	NotificationController *appControllers.NotificationController
	AdminController        *appControllers.AdminController
	Repos                  *appRepos.Repositories
	Mailer                 email.MailService
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.DemoData {
		if err := seed.CreateDemoData(context.Background(), database, lgr); err != nil {
			// Demo data is a convenience; startup continues without it.
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	if cfg.SMTP.Enabled {
		deps.Mailer = email.NewMailService(email.SMTPConfig{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			FromName:  cfg.SMTP.FromName,
			FromEmail: cfg.SMTP.FromEmail,
			BaseURL:   cfg.References.BaseURL,
		}, lgr)
	} else {
		deps.Mailer = email.NewNoopMailService(lgr)
	}

	tokenTTL := helpers.ParseDuration(cfg.References.TokenTTL, 720*time.Hour)

	deps.AuthService = appServices.NewAuthService(deps.Repos.Students, deps.Repos.Employers, lgr)
	deps.JobService = appServices.NewJobService(deps.Repos.Jobs, lgr)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.Applications,
		deps.Repos.Jobs,
		deps.Repos.Notifications,
		lgr,
	)
	deps.ReferenceService = appServices.NewReferenceService(
		deps.Repos.References,
		deps.Repos.Students,
		deps.Repos.Notifications,
		deps.Mailer,
		tokenTTL,
		lgr,
	)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.Notifications, lgr)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.Students,
		deps.Repos.Employers,
		deps.Repos.Jobs,
		deps.Repos.Applications,
		deps.Repos.References,
		lgr,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.AuthService, lgr)
	deps.JobController = appControllers.NewJobController(deps.JobService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, lgr)
	deps.ReferenceController = appControllers.NewReferenceController(deps.ReferenceService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.JobController,
		deps.ApplicationController,
		deps.ReferenceController,
		deps.NotificationController,
		deps.AdminController,
	)

	return router
}
