package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"wqtc-api/internal/auth"
	"wqtc-api/internal/config"
	"wqtc-api/internal/handler"
	"wqtc-api/internal/infrastructure/database"
	"wqtc-api/internal/logger"
	"wqtc-api/internal/metrics"
	"wqtc-api/internal/repository"
	"wqtc-api/internal/service"
	"wqtc-api/internal/storage"
	"wqtc-api/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	if cfg.RunMigrations {
		if err := database.Migrate(cfg.DSN(), cfg.MigrationsDir, database.Up); err != nil {
			logger.Fatal("Failed to run migrations",
				slog.String("error", err.Error()))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := database.NewPostgres(ctx, database.PoolConfig{
		DSN:               cfg.DSN(),
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()
	metrics.LogPoolStats(ctx, pool)

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory",
			slog.String("dir", cfg.UploadDir),
			slog.String("error", err.Error()))
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.JWTExpiration)
	if err != nil {
		logger.Fatal("Failed to configure tokens",
			slog.String("error", err.Error()))
	}

	// Initialize repositories
	videoRepo := repository.NewPostgresVideoRepository(pool)
	surahRepo := repository.NewPostgresSurahRepository(pool)
	ebookRepo := repository.NewPostgresEBookRepository(pool)
	registrationRepo := repository.NewPostgresRegistrationRepository(pool)
	userRepo := repository.NewPostgresUserRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens, v)
	libraryService := service.NewLibraryService(videoRepo, surahRepo, v)
	importService := service.NewImportService(videoRepo, surahRepo, v)
	exportService := service.NewExportService(videoRepo)
	surahService := service.NewSurahService(surahRepo, v)
	ebookService := service.NewEBookService(ebookRepo, files, v)
	registrationService := service.NewRegistrationService(registrationRepo, v)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.RouterConfig{
		CORSOrigins:   cfg.CORSOrigins,
		StaticDir:     files.Root(),
		Authenticator: authService,
	}, handler.Handlers{
		Auth:          handler.NewAuthHandler(authService, cfg.CookieSecure),
		Library:       handler.NewLibraryHandler(libraryService, importService, exportService, cfg.MaxUploadBytes),
		Surahs:        handler.NewSurahHandler(surahService),
		EBooks:        handler.NewEBookHandler(ebookService, cfg.MaxUploadBytes),
		Registrations: handler.NewRegistrationHandler(registrationService),
		Health:        handler.NewHealthHandler(pool),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server exited")
}
