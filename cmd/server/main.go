package main

import (
	"context"
	"log"

	appservice "github.com/turtacn/mfo-shield/internal/application/service"
	"github.com/turtacn/mfo-shield/internal/config"
	domainservice "github.com/turtacn/mfo-shield/internal/domain/service"
	"github.com/turtacn/mfo-shield/internal/infrastructure/monitoring"
	"github.com/turtacn/mfo-shield/internal/interfaces/http"
	"github.com/turtacn/mfo-shield/internal/interfaces/http/handlers"
	"github.com/turtacn/mfo-shield/pkg/constants"
	"github.com/turtacn/mfo-shield/pkg/logger"
)

func main() {
	// Logger for startup
	startupLogger, err := monitoring.NewZapLogger(&config.LogConfig{Level: "info", Format: "json"})
	if err != nil {
		log.Fatalf("Failed to create startup logger: %v", err)
	}

	// Load config
	loader := config.NewLoader(startupLogger)
	cfg, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := monitoring.NewZapLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)

	// Initialize tracing
	tracing, err := monitoring.NewTracingManager(cfg, appLogger)
	if err != nil {
		appLogger.Fatal(context.Background(), "Failed to initialize tracing", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
		defer cancel()
		_ = tracing.Shutdown(ctx)
	}()

	// Initialize infrastructure
	metrics := monitoring.NewMetrics()

	// Initialize application services
	calculator := domainservice.NewRiskCalculatorService()
	assessmentSvc := appservice.NewAssessmentAppService(calculator, metrics, appLogger)

	// Apply mutable settings when the config file changes
	loader.Watch(func(updated *config.Config) {
		appLogger.SetLevel(constants.LogLevel(updated.Log.Level))
	})

	// Initialize HTTP handlers and router
	healthHandler := handlers.NewHealthHandler()
	riskHandler := handlers.NewRiskHandler(assessmentSvc, appLogger)

	router := http.NewRouter(cfg, appLogger, healthHandler, riskHandler, metrics, tracing)
	if err := router.Start(); err != nil {
		appLogger.Fatal(context.Background(), "HTTP server failed", err)
	}
}
