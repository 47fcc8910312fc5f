package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/verdantgames/GardenGrove_Go/internal/bootstrap"
	"github.com/verdantgames/GardenGrove_Go/internal/config"
	"github.com/verdantgames/GardenGrove_Go/internal/database"
	"github.com/verdantgames/GardenGrove_Go/internal/database/postgres"
	"github.com/verdantgames/GardenGrove_Go/internal/garden"
	"github.com/verdantgames/GardenGrove_Go/internal/handler"
	"github.com/verdantgames/GardenGrove_Go/internal/logger"
	"github.com/verdantgames/GardenGrove_Go/internal/seed"
	"github.com/verdantgames/GardenGrove_Go/internal/server"
	"github.com/verdantgames/GardenGrove_Go/internal/world"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Strict env validation outside local development
	if cfg.Environment == logger.EnvironmentProduction || cfg.Environment == logger.EnvironmentStaging {
		warnings, err := config.ValidateEnvWithWarnings()
		if err != nil {
			log.Fatalf("Environment validation failed: %v", err)
		}
		for _, warning := range warnings {
			log.Printf("WARNING: %s", warning)
		}
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	handler.InitValidator()

	if err := bootstrap.RunMigrations(cfg); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	// Presentation side effects are disabled without a world platform URL
	var gateway world.Gateway
	if cfg.WorldBaseURL != "" {
		gateway = world.NewClient(cfg.WorldBaseURL, cfg.WorldAPIKey)
	} else {
		slog.Warn("WORLD_BASE_URL not set, world side effects disabled")
		gateway = world.NewNoopGateway()
	}

	gardenRepo := postgres.NewGardenRepository(dbPool)
	catalog := seed.NewDefaultCatalog()
	gardenService := garden.NewService(gardenRepo, catalog, gateway, resilientPublisher, cfg.PlotLink)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, gardenService)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: resilientPublisher,
	})
}
