package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"civicpulse/internal/config"
	"civicpulse/internal/feed"
	"civicpulse/internal/ingest"
	"civicpulse/internal/logger"
	"civicpulse/internal/metrics"
	"civicpulse/internal/migrations"
	"civicpulse/internal/ranking"
	server "civicpulse/internal/transport/http"
	"civicpulse/internal/usecase"
	"civicpulse/storage"
)

const shutdownTimeout = 10 * time.Second

// App представляет основное приложение CivicPulse.
// Координирует HTTP-сервер, хранилище и систему логирования,
// обеспечивает graceful startup и shutdown.
type App struct {
	config   *config.Config
	logger   *slog.Logger
	server   *http.Server
	storage  storage.Storage
	stopChan chan os.Signal
	wg       sync.WaitGroup
}

// New создает приложение: логгер, пул соединений, миграции, хранилище,
// use case-слой и HTTP-роутер.
func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	slog.SetDefault(appLogger)

	ctx := context.Background()
	dbPool, err := Connect(ctx, cfg.Database, appLogger)
	if err != nil {
		return nil, err
	}
	if err := migrations.Apply(ctx, appLogger, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("migrations failed: %w", err)
	}
	dbStorage := storage.NewPostgresDB(dbPool, appLogger)

	appMetrics := metrics.New()
	scorer := ranking.NewScorer(time.Now)
	renderer := feed.NewRenderer(time.Now)

	news := usecase.NewNewsUseCase(dbStorage, scorer, appMetrics, appLogger, cfg.App.ItemsLimit)
	services := server.Services{
		News:        news,
		Comments:    usecase.NewCommentsUseCase(dbStorage, dbStorage),
		Marketplace: usecase.NewMarketplaceUseCase(dbStorage, cfg.App.MarketplaceLimit),
		Events:      usecase.NewEventsUseCase(dbStorage, time.Now, appLogger, cfg.App.MarketplaceLimit),
		Directory:   usecase.NewDirectoryUseCase(dbStorage, cfg.App.ListLimit),
		Elections:   usecase.NewElectionsUseCase(dbStorage, cfg.App.ListLimit),
		Feeds:       usecase.NewFeedsUseCase(dbStorage, dbStorage, renderer, appMetrics),
		Ingest: usecase.NewIngestUseCase(
			ingest.NewSourceParser(appLogger),
			ingest.NewPlaceholder(time.Now),
			news,
			cfg.App.SourcesFile,
			appLogger,
		),
		Health: dbStorage,
	}

	handler := server.NewHandler(appLogger, services, cfg.App)
	router := server.NewServer(appLogger, handler, appMetrics, appMetrics.Handler())

	readTimeout, writeTimeout, idleTimeout := cfg.Server.Timeouts()
	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return &App{
		config:   cfg,
		logger:   appLogger,
		server:   httpServer,
		storage:  dbStorage,
		stopChan: make(chan os.Signal, 1),
	}, nil
}

// Connect открывает пул соединений и проверяет доступность базы.
func Connect(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*pgxpool.Pool, error) {
	dbPool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	log.Info("Database connection established",
		slog.String("component", "database"),
		slog.String("host", cfg.Host),
		slog.String("dbname", cfg.DBName),
	)
	return dbPool, nil
}

// Migrate применяет миграции и закрывает соединение.
func Migrate(ctx context.Context, cfg *config.Config) error {
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	dbPool, err := Connect(ctx, cfg.Database, appLogger)
	if err != nil {
		return err
	}
	defer dbPool.Close()
	if err := migrations.Apply(ctx, appLogger, dbPool); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	return nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения.
// Возвращает ошибку, если не удалось открыть порт.
func (a *App) Run() error {
	a.logger.Info("Starting CivicPulse API",
		slog.String("component", "app"),
		slog.String("default_city", a.config.App.DefaultCity),
		slog.String("sources_file", a.config.App.SourcesFile),
	)
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	a.logger.Info("HTTP server ready",
		slog.String("component", "server"),
		slog.String("address", listener.Addr().String()),
	)
	serverErr := make(chan error, 1)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server failed", slog.Any("error", err))
			serverErr <- err
		}
	}()
	signal.Notify(a.stopChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(a.stopChan)
	select {
	case sig := <-a.stopChan:
		a.logger.Info("Shutdown signal received",
			slog.String("component", "app"),
			slog.String("signal", sig.String()),
		)
	case err := <-serverErr:
		a.Shutdown()
		return fmt.Errorf("http server: %w", err)
	}
	return a.Shutdown()
}

// Shutdown завершает HTTP-сервер с таймаутом и закрывает пул соединений.
func (a *App) Shutdown() error {
	a.logger.Info("Starting graceful shutdown", slog.String("component", "app"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := a.server.Shutdown(shutdownCtx)
	if err != nil {
		a.logger.Error("HTTP server shutdown failed", slog.Any("error", err))
	}
	a.wg.Wait()
	if a.storage != nil {
		a.storage.Close()
	}
	a.logger.Info("Application stopped gracefully", slog.String("component", "app"))
	return err
}
