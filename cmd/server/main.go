package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobbuddy-utils/internal/api/routes"
	"jobbuddy-utils/internal/assistant"
	"jobbuddy-utils/internal/config"
	"jobbuddy-utils/internal/extractor"
	"jobbuddy-utils/internal/fetcher"
	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/llm/providers"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting JobBuddy Utils", map[string]interface{}{
		"provider": cfg.LLM.Provider,
		"fetcher":  cfg.Fetcher.Engine,
	})

	// Initialize LLM manager
	ctx := context.Background()
	llmManager := llm.NewManager(cfg, providers.NewFactory(cfg))
	if err := llmManager.Start(ctx); err != nil {
		logger.Fatal("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
	}

	// Initialize listing fetcher
	listingFetcher, err := fetcher.NewFetcher(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize listing fetcher", map[string]interface{}{"error": err.Error()})
	}

	// Optional Redis-backed session store
	var store *utils.SessionStore
	if cfg.Redis.Enabled {
		store = utils.NewSessionStore(cfg)
		pingCtx, cancel := context.WithTimeout(ctx, cfg.Redis.Timeout)
		if err := store.Ping(pingCtx); err != nil {
			logger.Warn("Session store unreachable, continuing without persistence", map[string]interface{}{
				"error": err.Error(),
			})
		}
		cancel()
		defer store.Close()
	}

	// Build the assistant facades
	assistants := routes.Assistants{
		Analyzer:    assistant.NewResumeAnalyzer(llmManager, extractor.New(logger)),
		Summarizer:  assistant.NewJobPostSummarizer(llmManager, listingFetcher),
		Coach:       assistant.NewCareerCoach(llmManager),
		Interviewer: assistant.NewMockInterviewer(llmManager, cfg),
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, llmManager, assistants, store)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Stop accepting requests first so in-flight streams can finish
		logger.Info("Stopping HTTP server...", nil)
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping LLM manager...", nil)
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete", nil)
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
