package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BarkinBalci/aml-portal-bridge/internal/bridge"
	"github.com/BarkinBalci/aml-portal-bridge/internal/config"
	"github.com/BarkinBalci/aml-portal-bridge/internal/logger"
	"github.com/BarkinBalci/aml-portal-bridge/internal/repository/sqlite"
	"github.com/BarkinBalci/aml-portal-bridge/internal/source/postgres"
)

func main() {
	// Load configuration; a missing SOURCE_DB_URL is fatal before any
	// store access happens
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.ServiceEnvironment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting portal bridge",
		zap.String("environment", cfg.ServiceEnvironment),
		zap.String("target_path", cfg.TargetDBPath))

	opts, err := cfg.TransformOptions()
	if err != nil {
		log.Fatal("Invalid transform options", zap.Error(err))
	}

	ctx := context.Background()

	// Connect to the source database
	reader, err := postgres.NewReader(cfg.SourceDBURL, log)
	if err != nil {
		log.Fatal("Failed to connect to source database", zap.Error(err))
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error("Failed to close source reader", zap.Error(err))
		}
	}()

	// Open the portal store
	client, err := sqlite.NewClient(cfg, log)
	if err != nil {
		log.Fatal("Failed to open portal store", zap.Error(err))
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Error("Failed to close portal store", zap.Error(err))
		}
	}()

	repo := sqlite.NewRepository(client, cfg.LoadBatchSize, log)

	// Run the migration
	b := bridge.New(reader, repo, opts, log)

	summary, err := b.Run(ctx)
	if err != nil {
		log.Fatal("Migration run failed", zap.Error(err))
	}

	fmt.Println("Bridge load complete.")
	fmt.Printf("Target DB: %s\n", cfg.TargetDBPath)
	fmt.Printf("Clients: %d, Tx: %d, Alerts: %d, Cases: %d\n",
		summary.Counts.Clients,
		summary.Counts.Transactions,
		summary.Counts.Alerts,
		summary.Counts.Cases)

	for entity, count := range summary.SkippedByEntity() {
		fmt.Printf("Skipped %s rows: %d (reasons logged above)\n", entity, count)
	}
}
