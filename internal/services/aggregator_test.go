package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dashboard-aggregator/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func goodSummary(key models.SourceKey) models.SourceSummary {
	return models.SourceSummary{
		Title:       fmt.Sprintf("%s headline", key),
		Description: fmt.Sprintf("%s description", key),
		APIName:     fmt.Sprintf("%s API", key),
		Image:       fmt.Sprintf("https://example.com/%s.png", key),
	}
}

// newTestAggregator builds an aggregator whose sources either succeed with a
// canned summary, fail, or panic, depending on the membership of the key.
func newTestAggregator(failing, panicking map[models.SourceKey]bool) *Aggregator {
	sources := make([]source, 0, len(models.SourceKeys))
	for _, key := range models.SourceKeys {
		key := key
		src := source{
			key:     key,
			name:    string(key),
			apiName: fmt.Sprintf("%s API", key),
			subject: "data",
		}
		switch {
		case panicking[key]:
			src.fetch = func(ctx context.Context) (models.SourceSummary, error) {
				panic("boom")
			}
		case failing[key]:
			src.fetch = func(ctx context.Context) (models.SourceSummary, error) {
				return models.SourceSummary{}, fmt.Errorf("upstream unavailable")
			}
		default:
			src.fetch = func(ctx context.Context) (models.SourceSummary, error) {
				return goodSummary(key), nil
			}
		}
		sources = append(sources, src)
	}

	return &Aggregator{
		sources: sources,
		logger:  zap.NewNop(),
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestDashboardAllSourcesSucceed(t *testing.T) {
	aggregator := newTestAggregator(nil, nil)

	result, err := aggregator.Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, result, len(models.SourceKeys))

	for _, key := range models.SourceKeys {
		entry, ok := result[key]
		require.True(t, ok, "missing key %s", key)
		assert.Equal(t, fmt.Sprintf("%s headline", key), entry.Title)
		assert.Equal(t, fmt.Sprintf("%s API", key), entry.APIName)
		assert.Equal(t, goodSummary(key), entry.FullData)
	}
}

func TestDashboardPartialFailure(t *testing.T) {
	failing := map[models.SourceKey]bool{
		models.SourceWeather:  true,
		models.SourceCurrency: true,
	}
	aggregator := newTestAggregator(failing, nil)

	result, err := aggregator.Dashboard(context.Background())
	require.NoError(t, err)

	// All six keys are present regardless of failures.
	require.Len(t, result, len(models.SourceKeys))

	for _, key := range models.SourceKeys {
		entry := result[key]
		if failing[key] {
			assert.Contains(t, entry.Title, "Unavailable")
			assert.Contains(t, entry.FullData.Title, "Unavailable")
			assert.Contains(t, entry.Image, "via.placeholder.com")
			assert.NotEmpty(t, entry.FullData.Description)
		} else {
			assert.NotContains(t, entry.Title, "Unavailable")
		}
	}
}

func TestDashboardAllSourcesFail(t *testing.T) {
	failing := make(map[models.SourceKey]bool)
	for _, key := range models.SourceKeys {
		failing[key] = true
	}
	aggregator := newTestAggregator(failing, nil)

	result, err := aggregator.Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, result, len(models.SourceKeys))

	for _, key := range models.SourceKeys {
		entry := result[key]
		assert.Contains(t, entry.Title, "Unavailable")
		// Placeholders are fully populated, never empty.
		assert.NotEmpty(t, entry.Image)
		assert.NotEmpty(t, entry.APIName)
		assert.NotEmpty(t, entry.FullData.Description)
	}
}

func TestDashboardSourcePanicBecomesPlaceholder(t *testing.T) {
	panicking := map[models.SourceKey]bool{
		models.SourceGemini: true,
	}
	aggregator := newTestAggregator(nil, panicking)

	result, err := aggregator.Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, result, len(models.SourceKeys))

	assert.Contains(t, result[models.SourceGemini].Title, "Unavailable")
	assert.NotContains(t, result[models.SourceCurrents].Title, "Unavailable")
}
