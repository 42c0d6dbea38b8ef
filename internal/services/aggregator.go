package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"dashboard-aggregator/internal/metrics"
	"dashboard-aggregator/internal/models"
	"dashboard-aggregator/pkg/client"
)

// Clients bundles the six per-source API clients the aggregator fans out to.
type Clients struct {
	Currents *client.CurrentsClient
	GNews    *client.GNewsClient
	Weather  *client.VisualCrossingClient
	Currency *client.OpenExchangeClient
	YouTube  *client.YouTubeClient
	Gemini   *client.GeminiClient
}

// source pairs a fixed key with its summary fetch and the placeholder
// identity used when the fetch fails.
type source struct {
	key     models.SourceKey
	name    string
	apiName string
	subject string
	fetch   func(ctx context.Context) (models.SourceSummary, error)
}

// Aggregator queries all sources concurrently and assembles the dashboard
// result. Individual source failures degrade only their own entry.
type Aggregator struct {
	sources []source
	logger  *zap.Logger
}

func NewAggregator(clients Clients, defaultCity string, logger *zap.Logger) *Aggregator {
	sources := []source{
		{
			key:     models.SourceCurrents,
			name:    "Currents News",
			apiName: "Currents API",
			subject: "news",
			fetch:   clients.Currents.Summary,
		},
		{
			key:     models.SourceGNews,
			name:    "GNews",
			apiName: "GNews API",
			subject: "news",
			fetch:   clients.GNews.Summary,
		},
		{
			key:     models.SourceWeather,
			name:    "Weather",
			apiName: "Visual Crossing API",
			subject: "weather data",
			fetch: func(ctx context.Context) (models.SourceSummary, error) {
				return clients.Weather.Summary(ctx, defaultCity)
			},
		},
		{
			key:     models.SourceCurrency,
			name:    "Currency",
			apiName: "Currency Exchange API",
			subject: "exchange rates",
			fetch:   clients.Currency.Summary,
		},
		{
			key:     models.SourceYouTube,
			name:    "YouTube",
			apiName: "YouTube API",
			subject: "YouTube data",
			fetch:   clients.YouTube.Summary,
		},
		{
			key:     models.SourceGemini,
			name:    "Gemini AI",
			apiName: "Gemini AI API",
			subject: "Gemini AI insight",
			fetch:   clients.Gemini.Summary,
		},
	}

	return &Aggregator{
		sources: sources,
		logger:  logger,
	}
}

type keyedSummary struct {
	key    models.SourceKey
	entry  models.SourceEntry
	failed bool
}

// Dashboard fetches all sources concurrently and waits for every one to
// settle. The result always carries all six keys; failed sources hold their
// placeholder entry. A nil result means the whole aggregation failed and the
// caller should retry, never partial data.
func (a *Aggregator) Dashboard(ctx context.Context) (models.AggregatedResult, error) {
	metrics.DashboardRequests.Inc()
	startTime := time.Now()

	var wg sync.WaitGroup
	results := make(chan keyedSummary, len(a.sources))

	for _, src := range a.sources {
		wg.Add(1)
		go func(src source) {
			defer wg.Done()
			results <- a.fetchSource(ctx, src)
		}(src)
	}

	wg.Wait()
	close(results)

	aggregated := make(models.AggregatedResult, len(a.sources))
	failureCount := 0
	for result := range results {
		aggregated[result.key] = result.entry
		if result.failed {
			failureCount++
		}
	}

	// Belt and braces: the fixed key set must always be complete.
	for _, src := range a.sources {
		if _, ok := aggregated[src.key]; !ok {
			return nil, fmt.Errorf("source %s missing from aggregation", src.key)
		}
	}

	a.logger.Info("Dashboard aggregation completed",
		zap.Int("sources", len(a.sources)),
		zap.Int("failures", failureCount),
		zap.Duration("duration", time.Since(startTime)))

	return aggregated, nil
}

// fetchSource runs one summary fetch and converts any failure, including a
// panic inside the fetch, into the source's placeholder entry. Errors never
// propagate past this boundary.
func (a *Aggregator) fetchSource(ctx context.Context, src source) (result keyedSummary) {
	result.key = src.key

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Source fetch panicked",
				zap.String("source", string(src.key)),
				zap.Any("panic", r))
			result.entry = placeholderEntry(src)
			result.failed = true
		}
	}()

	summary, err := src.fetch(ctx)
	if err != nil {
		a.logger.Warn("Source fetch failed, using placeholder",
			zap.String("source", string(src.key)),
			zap.Error(err))
		result.entry = placeholderEntry(src)
		result.failed = true
		return result
	}

	result.entry = models.SourceEntry{
		Title:    summary.Title,
		Image:    summary.Image,
		APIName:  src.apiName,
		FullData: summary,
	}
	return result
}

func placeholderEntry(src source) models.SourceEntry {
	placeholder := models.PlaceholderSummary(src.name, src.apiName, src.subject)
	return models.SourceEntry{
		Title:    placeholder.Title,
		Image:    placeholder.Image,
		APIName:  src.apiName,
		FullData: placeholder,
	}
}
