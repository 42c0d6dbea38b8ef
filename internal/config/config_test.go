package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAllCredentials(t *testing.T) {
	t.Helper()
	for _, name := range requiredCredentials {
		t.Setenv(name, "test-"+name)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	setAllCredentials(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Server.Debug)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "Las Pinas City", cfg.Dashboard.DefaultCity)
	assert.Equal(t, 30*time.Minute, cfg.Chat.SessionTTL)
	assert.Equal(t, 1000, cfg.Chat.MaxSessions)
	assert.Equal(t, "test-GEMINI_API_KEY", cfg.Credentials.GeminiAPIKey)
}

func TestLoadConfigOverrides(t *testing.T) {
	setAllCredentials(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DEFAULT_CITY", "Manila")
	t.Setenv("CLIENT_TIMEOUT", "5s")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "Manila", cfg.Dashboard.DefaultCity)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.True(t, cfg.Server.Debug)
}

func TestLoadConfigMissingCredentials(t *testing.T) {
	setAllCredentials(t)
	t.Setenv("GNEWS_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)

	// The error names every missing credential, none is silently defaulted.
	assert.Contains(t, err.Error(), "missing required credentials")
	assert.Contains(t, err.Error(), "GNEWS_API_KEY")
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	assert.NotContains(t, err.Error(), "CURRENTS_API_TOKEN")
}
