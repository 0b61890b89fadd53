package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/registrar/internal/app/controllers"
	appMigrations "github.com/yigit/registrar/internal/app/migrations"
	appRepos "github.com/yigit/registrar/internal/app/repositories"
	appRoutes "github.com/yigit/registrar/internal/app/routes"
	appServices "github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/db"
	appMiddleware "github.com/yigit/registrar/internal/middleware"
	pkgAuth "github.com/yigit/registrar/internal/pkg/auth"
	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/pkg/metrics"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	CollegeService    appServices.CollegeService
	ProgramService    appServices.ProgramService
	StudentService    appServices.StudentService
	StatsService      appServices.StatsService
	AuthService       *appServices.AuthService
	UserService       appServices.UserService
	AuthController    *appControllers.AuthController
	CollegeController *appControllers.CollegeController
	ProgramController *appControllers.ProgramController
	StudentController *appControllers.StudentController
	UserController    *appControllers.UserController
	HealthController  *appControllers.HealthController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	AuthLimiter       *appMiddleware.RateLimiter // nil when rate limiting is disabled
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Metrics           *metrics.Metrics
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database.Pool, nil
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(pool, appMigrations.Embedded()).Migrate(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Metrics = metrics.New()

	list := appServices.ListOptions{
		Timeout: cfg.ListQueryTimeout(),
		Metrics: deps.Metrics,
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.CollegeService = appServices.NewCollegeService(deps.Repos.CollegeRepository, list)
	deps.ProgramService = appServices.NewProgramService(deps.Repos.ProgramRepository, deps.Repos.CollegeRepository, list)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.ProgramRepository, list)
	deps.StatsService = appServices.NewStatsService(deps.Repos.StatsRepository)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, logger.Component("auth")).
		WithBcryptCost(cfg.Security.BcryptCost)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, list, cfg.Security.BcryptCost, logger.Component("users"))

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.JWT.CookieName)
	if cfg.RateLimit.Enabled {
		deps.AuthLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	deps.AuthController = appControllers.NewAuthController(
		deps.AuthService,
		appControllers.CookieOptions{Name: cfg.JWT.CookieName, Secure: cfg.JWT.CookieSecure},
		logger.Component("auth"),
	)
	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.ProgramController = appControllers.NewProgramController(deps.ProgramService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.StatsService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.HealthController = appControllers.NewHealthController(dbPool)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterGinValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(), deps.Metrics.Middleware())

	appRoutes.SetupRouter(router, appRoutes.Handlers{
		Auth:           deps.AuthController,
		College:        deps.CollegeController,
		Program:        deps.ProgramController,
		Student:        deps.StudentController,
		User:           deps.UserController,
		Health:         deps.HealthController,
		AuthMiddleware: deps.AuthMiddleware,
		AuthLimiter:    deps.AuthLimiter,
		Metrics:        deps.Metrics.Handler(),
	})

	return router, nil
}
