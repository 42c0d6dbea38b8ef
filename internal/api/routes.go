package api

import (
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, handler *Handler, log *zap.Logger) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	// Custom logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${pid} ${locals:requestid} ${status} - ${method} ${path}\n",
		TimeFormat: time.RFC3339,
	}))

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API v1 routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", handler.GetHealth)

	// Aggregated dashboard
	api.Get("/dashboard", handler.GetDashboard)

	// News routes
	news := api.Group("/news")
	news.Get("/latest", handler.GetLatestNews)
	news.Get("/search", handler.SearchNews)
	api.Get("/gnews", handler.GetGNews)

	// Weather
	api.Get("/weather", handler.GetWeather)

	// Currency routes
	currency := api.Group("/currency")
	currency.Get("/rates", handler.GetCurrencyRates)
	currency.Get("/convert", handler.ConvertCurrency)

	// Video routes
	videos := api.Group("/videos")
	videos.Get("/search", handler.SearchVideos)
	videos.Get("/:id/stats", handler.GetVideoStatistics)
	videos.Get("/:id/comments", handler.GetVideoComments)

	// Chat routes
	chat := api.Group("/chat")
	chat.Post("/sessions", handler.CreateChatSession)
	chat.Get("/sessions/:id", handler.GetChatSession)
	chat.Post("/sessions/:id/messages", handler.SendChatMessage)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
			"path":  c.Path(),
		})
	})
}
