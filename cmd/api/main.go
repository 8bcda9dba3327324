package main

import (
	"context"
	"fmt"

	"taskflow/config"
	_ "taskflow/docs" // Swagger docs
	"taskflow/internal/db"
	"taskflow/internal/httpserver"
	"taskflow/internal/middleware"
	"taskflow/pkg/datemath"
	"taskflow/pkg/log"
)

// @title       TaskFlow API
// @description Natural-language quick entry for tasks: parse, batch, and submit.
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
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting TaskFlow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer database.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.QuickAdd.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.QuickAdd.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          database,
		DateMath:    dateMathParser,
		Middleware: middleware.Config{
			RateLimit:   cfg.RateLimit.PerSecond,
			RateBurst:   cfg.RateLimit.Burst,
			RateClients: cfg.RateLimit.Clients,
		},
		SessionCapacity: cfg.QuickAdd.SessionCapacity,
		SessionTTL:      cfg.QuickAdd.SessionTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
