package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"smart-day-planner/config"
	_ "smart-day-planner/docs" // Swagger docs
	"smart-day-planner/internal/httpserver"
	"smart-day-planner/internal/middleware"
	planHTTP "smart-day-planner/internal/plan/delivery/http"
	"smart-day-planner/internal/plan/usecase"
	"smart-day-planner/internal/schedule"
	"smart-day-planner/pkg/groq"
	"smart-day-planner/pkg/huggingface"
	"smart-day-planner/pkg/log"
)

// @title       Smart Day Planner API
// @description Sentiment-aware day planning with regex task extraction and LLM wellness suggestions.
// @version     1
// @host        localhost:5001
// @schemes     http
func main() {
	// 0. Local .env (optional)
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using process environment")
	}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Day Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Sentiment classifier. Failure here is not fatal to the process but
	// makes /api/plan refuse traffic with 500.
	var classifier huggingface.IClassifier
	if hfClient, hfErr := huggingface.New(cfg.HuggingFace.APIToken); hfErr != nil {
		logger.Errorf(ctx, "Sentiment classifier not loaded: %v", hfErr)
	} else {
		classifier = hfClient.WithModel(cfg.HuggingFace.Model)
		logger.Infof(ctx, "Sentiment classifier ready (model=%s)", classifier.Model())
	}

	// 4. Groq LLM client. Missing credential degrades suggestions to empty.
	var llm groq.IGroq
	if llmClient, llmErr := groq.New(groq.Config{
		APIKey:  cfg.Groq.APIKey,
		Model:   cfg.Groq.Model,
		BaseURL: cfg.Groq.BaseURL,
	}); llmErr != nil {
		logger.Warnf(ctx, "Groq client not available, suggestions disabled: %v", llmErr)
	} else {
		llm = llmClient
		logger.Infof(ctx, "Groq client ready (model=%s)", llm.Model())
	}

	// 5. Plan domain
	planUC := usecase.New(logger, classifier, llm, schedule.New())
	planHandler := planHTTP.New(logger, planUC)

	// 6. HTTP server
	mw := middleware.New(logger, cfg.Plan.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		PlanHandler: planHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
