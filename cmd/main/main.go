package main

import (
	"context"

	"structon/generator/internal/config"
	"structon/generator/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting Structon catalog generator...")

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	// Initialize container with all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Run the generation
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Generation exited with error: %v", err)
	}

	log.Info("Generation finished successfully")
}
