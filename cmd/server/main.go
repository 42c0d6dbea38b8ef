package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"dashboard-aggregator/internal/api"
	"dashboard-aggregator/internal/config"
	"dashboard-aggregator/internal/services"
	"dashboard-aggregator/pkg/client"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting Dashboard Aggregation Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	cfg.LogDiagnostics(logger)

	// Initialize per-source clients
	clientConfig := client.ClientConfig{
		Timeout:        cfg.Client.Timeout,
		BreakerTimeout: cfg.Client.BreakerTimeout,
	}
	clients := services.Clients{
		Currents: client.NewCurrentsClient(cfg.Credentials.CurrentsAPIToken, clientConfig, logger),
		GNews:    client.NewGNewsClient(cfg.Credentials.GNewsAPIKey, clientConfig, logger),
		Weather:  client.NewVisualCrossingClient(cfg.Credentials.VisualCrossingKey, clientConfig, logger),
		Currency: client.NewOpenExchangeClient(cfg.Credentials.CurrencyAppID, clientConfig, logger),
		YouTube:  client.NewYouTubeClient(cfg.Credentials.YouTubeAPIKey, clientConfig, logger),
		Gemini:   client.NewGeminiClient(cfg.Credentials.GeminiAPIKey, clientConfig, logger),
	}

	// Initialize aggregator and chat service
	aggregator := services.NewAggregator(clients, cfg.Dashboard.DefaultCity, logger)
	sessions := services.NewSessionStore(cfg.Chat.SessionTTL, cfg.Chat.MaxSessions, logger)
	chat := services.NewChatService(clients.Gemini, sessions, logger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	// Setup handlers and routes
	handler := api.NewHandler(aggregator, clients, chat, logger)
	api.SetupRoutes(app, handler, logger)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop session cleanup
	sessions.Stop()

	// Shutdown Fiber app
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	// Default to 500 status code
	code := fiber.StatusInternalServerError

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}
