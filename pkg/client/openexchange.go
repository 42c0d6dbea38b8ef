package client

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"dashboard-aggregator/internal/models"
)

const usFlagImageURL = "https://upload.wikimedia.org/wikipedia/en/thumb/a/a4/Flag_of_the_United_States.svg/1280px-Flag_of_the_United_States.svg.png"

// OpenExchangeClient calls the Open Exchange Rates API for current and
// historical USD-based rate tables.
type OpenExchangeClient struct {
	*BaseClient
	appID   string
	baseURL string
}

type openExchangeRatesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func NewOpenExchangeClient(appID string, config ClientConfig, logger *zap.Logger) *OpenExchangeClient {
	return &OpenExchangeClient{
		BaseClient: NewBaseClient("currency", config, logger),
		appID:      appID,
		baseURL:    "https://openexchangerates.org/api",
	}
}

// Latest returns the current rate table.
func (c *OpenExchangeClient) Latest(ctx context.Context) (models.RateTable, error) {
	endpoint := fmt.Sprintf("%s/latest.json?app_id=%s", c.baseURL, c.appID)
	return c.fetchRates(ctx, endpoint)
}

// Historical returns the rate table for a past date.
func (c *OpenExchangeClient) Historical(ctx context.Context, date time.Time) (models.RateTable, error) {
	endpoint := fmt.Sprintf("%s/historical/%s.json?app_id=%s",
		c.baseURL, date.Format("2006-01-02"), c.appID)
	return c.fetchRates(ctx, endpoint)
}

// Currencies returns the code-to-name table. No credential required upstream.
func (c *OpenExchangeClient) Currencies(ctx context.Context) (map[string]string, error) {
	endpoint := fmt.Sprintf("%s/currencies.json", c.baseURL)

	currencies := make(map[string]string)
	if err := c.GetJSON(ctx, endpoint, &currencies); err != nil {
		return nil, fmt.Errorf("failed to fetch currencies: %w", err)
	}
	return currencies, nil
}

func (c *OpenExchangeClient) fetchRates(ctx context.Context, endpoint string) (models.RateTable, error) {
	var response openExchangeRatesResponse
	if err := c.GetJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	if len(response.Rates) == 0 {
		return nil, fmt.Errorf("no rates in response")
	}
	return models.RateTable(response.Rates), nil
}

// Summary reports the current USD to EUR rate as a dashboard tile.
func (c *OpenExchangeClient) Summary(ctx context.Context) (models.SourceSummary, error) {
	rates, err := c.Latest(ctx)
	if err != nil {
		return models.SourceSummary{}, err
	}

	usdToEur, ok := rates["EUR"]
	if !ok {
		return models.SourceSummary{}, fmt.Errorf("EUR rate missing from table")
	}

	return models.SourceSummary{
		Title:       "USD to EUR Exchange Rate",
		Description: fmt.Sprintf("$1 = €%.2f", usdToEur),
		APIName:     "Currency Exchange API",
		Image:       usFlagImageURL,
	}, nil
}
