package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"dashboard-aggregator/internal/derive"
	"dashboard-aggregator/internal/models"
	"dashboard-aggregator/internal/services"
)

const (
	defaultNewsLimit    = 9
	defaultVideoLimit   = 10
	defaultCommentLimit = 20
)

type Handler struct {
	aggregator *services.Aggregator
	clients    services.Clients
	chat       *services.ChatService
	logger     *zap.Logger
}

func NewHandler(aggregator *services.Aggregator, clients services.Clients, chat *services.ChatService, logger *zap.Logger) *Handler {
	return &Handler{
		aggregator: aggregator,
		clients:    clients,
		chat:       chat,
		logger:     logger,
	}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	result, err := h.aggregator.Dashboard(c.Context())
	if err != nil || result == nil {
		h.logger.Error("Dashboard aggregation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to aggregate dashboard data, try again",
		})
	}

	return c.JSON(result)
}

// GetLatestNews handles GET /api/v1/news/latest
func (h *Handler) GetLatestNews(c *fiber.Ctx) error {
	limit := parseLimit(c.Query("limit"), defaultNewsLimit)

	articles, err := h.clients.Currents.Latest(c.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to fetch latest news", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch latest news",
		})
	}

	return c.JSON(fiber.Map{
		"news": articles,
	})
}

// SearchNews handles GET /api/v1/news/search
func (h *Handler) SearchNews(c *fiber.Ctx) error {
	keywords := c.Query("keywords")
	if keywords == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Keywords parameter is required",
		})
	}
	limit := parseLimit(c.Query("limit"), defaultNewsLimit)

	articles, err := h.clients.Currents.Search(c.Context(), keywords, limit)
	if err != nil {
		h.logger.Error("Failed to search news",
			zap.String("keywords", keywords),
			zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to search news",
		})
	}

	return c.JSON(fiber.Map{
		"news": articles,
	})
}

// GetGNews handles GET /api/v1/gnews
func (h *Handler) GetGNews(c *fiber.Ctx) error {
	query := c.Query("q")
	max := parseLimit(c.Query("max"), defaultNewsLimit)

	articles, err := h.clients.GNews.TopHeadlines(c.Context(), query, max)
	if err != nil {
		h.logger.Error("Failed to fetch GNews headlines",
			zap.String("query", query),
			zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch news",
		})
	}

	return c.JSON(fiber.Map{
		"articles": articles,
	})
}

// GetWeather handles GET /api/v1/weather
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	city := c.Query("city")
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "City parameter is required",
		})
	}

	h.logger.Info("Fetching weather", zap.String("city", city))

	snapshot, err := h.clients.Weather.Timeline(c.Context(), city)
	if err != nil {
		h.logger.Error("Failed to fetch weather",
			zap.String("city", city),
			zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("Unable to fetch weather for %s", city),
		})
	}

	return c.JSON(snapshot)
}

// GetCurrencyRates handles GET /api/v1/currency/rates
func (h *Handler) GetCurrencyRates(c *fiber.Ctx) error {
	ctx := c.Context()

	rates, err := h.clients.Currency.Latest(ctx)
	if err != nil {
		h.logger.Error("Failed to fetch exchange rates", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch exchange rates",
		})
	}

	monthAgo := time.Now().AddDate(0, -1, 0)
	historical, err := h.clients.Currency.Historical(ctx, monthAgo)
	if err != nil {
		h.logger.Warn("Failed to fetch historical rates, changes unavailable", zap.Error(err))
		historical = models.RateTable{}
	}

	changes := make(map[string]string, len(rates))
	for code := range rates {
		if change, ok := derive.PercentChange(code, rates, historical); ok {
			changes[code] = strconv.FormatFloat(change, 'f', 2, 64)
		} else {
			changes[code] = "N/A"
		}
	}

	report := models.RateReport{
		Base:       "USD",
		Rates:      rates,
		Historical: historical,
		Changes:    changes,
	}

	// The named-currency table is cosmetic; its failure does not fail the report.
	if currencies, err := h.clients.Currency.Currencies(ctx); err == nil {
		report.Currencies = currencies
	} else {
		h.logger.Warn("Failed to fetch currency names", zap.Error(err))
	}

	return c.JSON(report)
}

// ConvertCurrency handles GET /api/v1/currency/convert
func (h *Handler) ConvertCurrency(c *fiber.Ctx) error {
	amount, err := strconv.ParseFloat(c.Query("amount", "1"), 64)
	if err != nil || amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Amount must be a positive number",
		})
	}

	from := strings.ToUpper(c.Query("from", "USD"))
	to := strings.ToUpper(c.Query("to", "EUR"))

	rates, err := h.clients.Currency.Latest(c.Context())
	if err != nil {
		h.logger.Error("Failed to fetch exchange rates", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch exchange rates",
		})
	}

	converted, ok := derive.Convert(amount, from, to, rates)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("Unknown currency code: %s or %s", from, to),
		})
	}

	return c.JSON(models.Conversion{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: converted,
	})
}

// SearchVideos handles GET /api/v1/videos/search
func (h *Handler) SearchVideos(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter q is required",
		})
	}
	limit := parseLimit(c.Query("limit"), defaultVideoLimit)

	videos, err := h.clients.YouTube.Search(c.Context(), query, limit)
	if err != nil {
		h.logger.Error("Failed to search videos",
			zap.String("query", query),
			zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Error fetching videos. Please try again.",
		})
	}

	return c.JSON(fiber.Map{
		"videos": videos,
	})
}

// GetVideoStatistics handles GET /api/v1/videos/:id/stats
func (h *Handler) GetVideoStatistics(c *fiber.Ctx) error {
	videoID := c.Params("id")

	stats, err := h.clients.YouTube.Statistics(c.Context(), videoID)
	if err != nil {
		h.logger.Error("Failed to fetch video statistics",
			zap.String("video_id", videoID),
			zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch video details",
		})
	}

	return c.JSON(stats)
}

// GetVideoComments handles GET /api/v1/videos/:id/comments
func (h *Handler) GetVideoComments(c *fiber.Ctx) error {
	videoID := c.Params("id")
	limit := parseLimit(c.Query("limit"), defaultCommentLimit)

	comments, err := h.clients.YouTube.Comments(c.Context(), videoID, limit)
	if err != nil {
		h.logger.Error("Failed to fetch comments",
			zap.String("video_id", videoID),
			zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch comments",
		})
	}

	return c.JSON(fiber.Map{
		"comments": comments,
	})
}

// CreateChatSession handles POST /api/v1/chat/sessions
func (h *Handler) CreateChatSession(c *fiber.Ctx) error {
	session := h.chat.CreateSession()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session_id": session.ID,
	})
}

type chatMessageRequest struct {
	Message string `json:"message"`
}

// SendChatMessage handles POST /api/v1/chat/sessions/:id/messages
func (h *Handler) SendChatMessage(c *fiber.Ctx) error {
	var req chatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sessionID := c.Params("id")
	turn, err := h.chat.Send(c.Context(), sessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message must not be empty",
			})
		case errors.Is(err, services.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		case errors.Is(err, services.ErrSendInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A message is already being processed for this session",
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "An error occurred while fetching the response. Please try again.",
			})
		}
	}

	return c.JSON(fiber.Map{
		"reply": turn,
	})
}

// GetChatSession handles GET /api/v1/chat/sessions/:id
func (h *Handler) GetChatSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	turns, err := h.chat.History(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"turns":      turns,
	})
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
		"sources":   models.SourceKeys,
	})
}

func parseLimit(value string, defaultLimit int) int {
	if value == "" {
		return defaultLimit
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 1 {
		return defaultLimit
	}
	return limit
}

var startTime = time.Now()
