// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fraservotes/console/internal/config"
	"github.com/fraservotes/console/internal/database"
	"github.com/fraservotes/console/internal/http"
	"github.com/fraservotes/console/internal/metrics"
	navigationHTTP "github.com/fraservotes/console/internal/navigation/http"
	navigationUseCase "github.com/fraservotes/console/internal/navigation/usecase"
	onboardingHTTP "github.com/fraservotes/console/internal/onboarding/http"
	onboardingService "github.com/fraservotes/console/internal/onboarding/service"
	onboardingUseCase "github.com/fraservotes/console/internal/onboarding/usecase"
	securityKeyHTTP "github.com/fraservotes/console/internal/securitykey/http"
	securityKeyUseCase "github.com/fraservotes/console/internal/securitykey/usecase"
	sessionHTTP "github.com/fraservotes/console/internal/session/http"
	sessionService "github.com/fraservotes/console/internal/session/service"
	sessionUseCase "github.com/fraservotes/console/internal/session/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Background context for long-lived helpers, cancelled on Shutdown.
	ctx    context.Context
	cancel context.CancelFunc

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Managers
	txManager database.TxManager

	// Services
	passwordService sessionService.PasswordService
	tokenService    sessionService.TokenService
	assetPreloader  onboardingService.AssetPreloader

	// Repositories
	userRepository        sessionUseCase.UserRepository
	tokenRepository       sessionUseCase.TokenRepository
	completionRepository  onboardingUseCase.CompletionRepository
	securityKeyRepository securityKeyUseCase.Registry

	// Use Cases
	sessionUseCase     sessionUseCase.SessionUseCase
	navigationUseCase  navigationUseCase.NavigationUseCase
	onboardingService  *onboardingUseCase.OnboardingService
	onboardingUseCase  onboardingUseCase.OnboardingUseCase
	securityKeyUseCase securityKeyUseCase.SecurityKeyUseCase

	// HTTP Handlers
	sessionHandler     *sessionHTTP.SessionHandler
	navigationHandler  *navigationHTTP.NavigationHandler
	onboardingHandler  *onboardingHTTP.OnboardingHandler
	securityKeyHandler *securityKeyHTTP.SecurityKeyHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                        sync.Mutex
	loggerInit                sync.Once
	dbInit                    sync.Once
	metricsProviderInit       sync.Once
	businessMetricsInit       sync.Once
	txManagerInit             sync.Once
	passwordServiceInit       sync.Once
	tokenServiceInit          sync.Once
	assetPreloaderInit        sync.Once
	userRepositoryInit        sync.Once
	tokenRepositoryInit       sync.Once
	completionRepositoryInit  sync.Once
	securityKeyRepositoryInit sync.Once
	sessionUseCaseInit        sync.Once
	navigationUseCaseInit     sync.Once
	onboardingServiceInit     sync.Once
	onboardingUseCaseInit     sync.Once
	securityKeyUseCaseInit    sync.Once
	sessionHandlerInit        sync.Once
	navigationHandlerInit     sync.Once
	onboardingHandlerInit     sync.Once
	securityKeyHandlerInit    sync.Once
	httpServerInit            sync.Once
	metricsServerInit         sync.Once
	initErrors                map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		config:     cfg,
		ctx:        ctx,
		cancel:     cancel,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus-backed meter provider, or nil when
// metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. A no-op recorder is
// returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the HTTP server with every feature route mounted.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Stop background helpers such as the login rate limiter and pending removal sweepers
	c.cancel()

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Evict live onboarding flows and wait for their preloads before closing the database
	if c.onboardingService != nil {
		if err := c.onboardingService.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("onboarding shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %w", errors.Join(shutdownErrors...))
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	switch c.config.DBDriver {
	case database.DriverPostgres, database.DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	db, err := database.Connect(c.ctx, database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initMetricsProvider creates the meter provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initHTTPServer creates the HTTP server and mounts every feature handler.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	sessionHandler, err := c.SessionHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get session handler for http server: %w", err)
	}

	sessionMiddleware, err := c.SessionMiddleware()
	if err != nil {
		return nil, fmt.Errorf("failed to get session middleware for http server: %w", err)
	}

	navigationHandler, err := c.NavigationHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get navigation handler for http server: %w", err)
	}

	onboardingHandler, err := c.OnboardingHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get onboarding handler for http server: %w", err)
	}

	securityKeyHandler, err := c.SecurityKeyHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get security key handler for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(c.config, http.Handlers{
		Session:           sessionHandler,
		Navigation:        navigationHandler,
		Onboarding:        onboardingHandler,
		SecurityKey:       securityKeyHandler,
		SessionMiddleware: sessionMiddleware,
		LoginRateLimit:    c.LoginRateLimitMiddleware(),
	}, metricsProvider)

	return server, nil
}

// initMetricsServer creates the metrics server when metrics are enabled.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
