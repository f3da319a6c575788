package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/api"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/config"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/database"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/face"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/fetch"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/match"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting face recognition employee system",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.Float64("threshold", cfg.MatchThreshold),
	)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database pool
	pool, err := database.NewPool(ctx, database.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	// Face encoder
	encoder, err := face.NewEncoder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create encoder: %w", err)
	}

	// Enrollment image fetcher
	fetcher, err := fetch.New(cfg.StorageDir, cfg.FetchTimeout)
	if err != nil {
		return fmt.Errorf("failed to create image fetcher: %w", err)
	}

	deps := &api.Dependencies{
		EmployeeRepo:     repository.NewEmployeeRepository(pool).WithTimeout(cfg.StoreTimeout),
		EncodingRepo:     repository.NewEncodingRepository(pool).WithTimeout(cfg.StoreTimeout),
		VerificationRepo: repository.NewVerificationRepository(pool).WithTimeout(cfg.StoreTimeout),
		Encoder:          encoder,
		Fetcher:          fetcher,
		Engine:           match.NewEngine(cfg.MatchThreshold),
		DB:               pool,
	}

	// Setup router
	router := api.NewRouter(logger, deps)
	router.Setup()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	<-shutdownCtx.Done()
	logger.Info("server stopped")

	return nil
}
