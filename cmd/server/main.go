package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/guardify/backend/config"
	httpDelivery "github.com/guardify/backend/internal/delivery/http"
	"github.com/guardify/backend/internal/domain"
	"github.com/guardify/backend/internal/infrastructure/artifact"
	"github.com/guardify/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Guardify Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Load the model artifact once; it is read-only for the process
	// lifetime. A missing artifact is not fatal: the service starts in
	// degraded mode and every request gets the "Model not loaded" result.
	var model domain.FraudModel
	loaded, err := artifact.Load(cfg.Model.Path)
	switch {
	case err == nil:
		model = loaded.Model
		log.Printf("Model loaded from %s (numeric features: %d)",
			cfg.Model.Path, len(loaded.Model.NumericFeatures()))
	case errors.Is(err, domain.ErrArtifactNotFound):
		log.Printf("WARNING: model artifact %s not found - serving degraded responses", cfg.Model.Path)
	default:
		log.Fatalf("Failed to load model artifact: %v", err)
	}

	// Initialize usecase layer
	scoringService := usecase.NewScoringService(model, usecase.ScoringServiceConfig{
		EnableDebugLogging: cfg.Server.Environment == "development",
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(scoringService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
