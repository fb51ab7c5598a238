package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"plansync/config"
	_ "plansync/docs" // Swagger docs
	"plansync/internal/app"
	"plansync/internal/httpserver"
)

// @title       plansync API
// @description Two-way sync between markdown checklist tasks and Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := app.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting plansync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Vault root: %s", cfg.Vault.Root)

	// 3. Components
	a, err := app.Build(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize: ", err)
		return
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warnf(context.Background(), "Shutdown: %v", err)
		}
	}()

	// 4. Background refresh
	a.StartBackground(ctx)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      a.Middleware,
		SyncUseCase:     a.Sync,
		TimelineUseCase: a.Timeline,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
