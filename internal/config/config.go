package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		Debug        bool
	}

	Credentials struct {
		CurrentsAPIToken  string
		GNewsAPIKey       string
		VisualCrossingKey string
		CurrencyAppID     string
		YouTubeAPIKey     string
		GeminiAPIKey      string
	}

	Client struct {
		Timeout        time.Duration
		BreakerTimeout time.Duration
	}

	Dashboard struct {
		DefaultCity string
	}

	Chat struct {
		SessionTTL  time.Duration
		MaxSessions int
	}
}

// requiredCredentials lists the environment variables that must be set.
// Credentials have no fallback defaults; a missing one fails startup.
var requiredCredentials = []string{
	"CURRENTS_API_TOKEN",
	"GNEWS_API_KEY",
	"VISUALCROSSING_API_KEY",
	"CURRENCY_APP_ID",
	"YOUTUBE_API_KEY",
	"GEMINI_API_KEY",
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("SERVER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("SERVER_WRITE_TIMEOUT", "10s"))
	cfg.Server.Debug = parseBool(getEnv("DEBUG", "false"))

	// Upstream credentials, all required
	var missing []string
	for _, name := range requiredCredentials {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required credentials: %s", strings.Join(missing, ", "))
	}

	cfg.Credentials.CurrentsAPIToken = os.Getenv("CURRENTS_API_TOKEN")
	cfg.Credentials.GNewsAPIKey = os.Getenv("GNEWS_API_KEY")
	cfg.Credentials.VisualCrossingKey = os.Getenv("VISUALCROSSING_API_KEY")
	cfg.Credentials.CurrencyAppID = os.Getenv("CURRENCY_APP_ID")
	cfg.Credentials.YouTubeAPIKey = os.Getenv("YOUTUBE_API_KEY")
	cfg.Credentials.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	// Outbound client configuration
	cfg.Client.Timeout = parseDuration(getEnv("CLIENT_TIMEOUT", "10s"))
	cfg.Client.BreakerTimeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	// Dashboard configuration
	cfg.Dashboard.DefaultCity = getEnv("DEFAULT_CITY", "Las Pinas City")

	// Chat configuration
	cfg.Chat.SessionTTL = parseDuration(getEnv("CHAT_SESSION_TTL", "30m"))
	cfg.Chat.MaxSessions = parseInt(getEnv("CHAT_MAX_SESSIONS", "1000"))

	return cfg, nil
}

// LogDiagnostics emits one startup log of the loaded configuration when debug
// is enabled. Credentials are reported by presence only, never by value.
func (c *Config) LogDiagnostics(logger *zap.Logger) {
	if !c.Server.Debug {
		return
	}

	credentialFields := make([]zap.Field, 0, len(requiredCredentials))
	for _, name := range requiredCredentials {
		credentialFields = append(credentialFields,
			zap.Bool(name, os.Getenv(name) != ""))
	}

	logger.Debug("Startup configuration",
		append([]zap.Field{
			zap.String("port", c.Server.Port),
			zap.Duration("read_timeout", c.Server.ReadTimeout),
			zap.Duration("write_timeout", c.Server.WriteTimeout),
			zap.Duration("client_timeout", c.Client.Timeout),
			zap.String("default_city", c.Dashboard.DefaultCity),
			zap.Duration("chat_session_ttl", c.Chat.SessionTTL),
			zap.Int("chat_max_sessions", c.Chat.MaxSessions),
		}, credentialFields...)...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseBool(value string) bool {
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return boolValue
}
