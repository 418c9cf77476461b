package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"clientapi/docs"
	"clientapi/internal/config"
	"clientapi/internal/handlers"
	"clientapi/internal/logger"
	"clientapi/internal/middleware"
	"clientapi/internal/pdf"
	"clientapi/internal/repositories"
	"clientapi/internal/routes"
	"clientapi/internal/services"
)

// BuildVersion is overridden at build time with -ldflags.
var BuildVersion = "dev"

// Application holds the wired dependencies of the client service.
type Application struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *sql.DB
	server *http.Server
}

// New opens the database, applies migrations when enabled and builds the HTTP server.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log = log.With(zap.String("service", "clientapi"), zap.String("version", BuildVersion))

	// === DB ===
	db, err := repositories.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.Database.Migrate {
		if err := repositories.ApplyMigrations(db, cfg.Database.Driver); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("database migrations applied", zap.String("driver", cfg.Database.Driver))
	}

	app := &Application{cfg: cfg, logger: log, db: db}
	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: app.router(),
	}
	return app, nil
}

// Handler exposes the configured router, mainly for tests.
func (a *Application) Handler() http.Handler { return a.server.Handler }

func (a *Application) router() *gin.Engine {
	// === Repos / Services ===
	clientRepo := repositories.NewClientRepository(a.db, a.cfg.Database.Driver)
	clientService := services.NewClientService(clientRepo, a.logger)

	// === Handlers ===
	clientHandler := handlers.NewClientHandler(clientService, a.cfg.Pagination)
	reportHandler := handlers.NewReportHandler(
		clientService,
		pdf.NewReportGenerator(a.cfg.Reports.Title, a.cfg.Reports.FontPath),
		a.cfg.Pagination,
	)
	healthHandler := handlers.NewHealthHandler(a.db, clientRepo)

	// === Gin ===
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(a.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.NewIPRateLimiter(a.cfg.RateLimit.RequestsPerMinute, a.cfg.RateLimit.Burst).Middleware())

	// Swagger
	docs.SwaggerInfo.Version = BuildVersion
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return routes.SetupRoutes(router, clientHandler, reportHandler, healthHandler)
}

// Run serves HTTP until SIGINT/SIGTERM, then shuts down gracefully.
func (a *Application) Run() error {
	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = a.close()
			return fmt.Errorf("server failed: %w", err)
		}
		return a.close()
	case sig := <-shutdown:
		a.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		return a.Shutdown()
	}
}

func (a *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("graceful shutdown failed", zap.Error(err))
		_ = a.server.Close()
	}
	return a.close()
}

func (a *Application) close() error {
	defer func() { _ = a.logger.Sync() }()
	if err := a.db.Close(); err != nil {
		a.logger.Error("error closing database", zap.Error(err))
		return err
	}
	a.logger.Info("client service stopped")
	return nil
}

// Run loads the configuration and serves until interrupted.
func Run() error {
	cfg := config.LoadConfig()
	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}

	application, err := New(context.Background(), cfg)
	if err != nil {
		return err
	}
	return application.Run()
}
