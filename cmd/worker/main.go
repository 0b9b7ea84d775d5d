package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentfolio/internal/config"
	"rentfolio/internal/database"
	"rentfolio/internal/logger"
	"rentfolio/internal/services"
)

func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	flag.Parse()

	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(*once); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(once bool) error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager. The API server owns schema migrations; the
	// worker only needs the schema to exist.
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	db := dbManager.DB()
	sweepService := services.NewSweepService(db, services.NewObligationStore(db))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if once {
		_, err := sweepService.Run(ctx, "scheduled")
		return err
	}

	log.Infow("sweep worker started", "interval", appConfig.SweepInterval.String())

	// Sweep immediately on startup, then on every tick
	if _, err := sweepService.Run(ctx, "scheduled"); err != nil {
		log.Errorw("sweep failed", "error", err)
	}

	ticker := time.NewTicker(appConfig.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("sweep worker stopping")
			return nil
		case <-ticker.C:
			if _, err := sweepService.Run(ctx, "scheduled"); err != nil {
				log.Errorw("sweep failed", "error", err)
			}
		}
	}
}
