package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const ratesFixture = `{
	"base": "USD",
	"rates": {"USD": 1, "EUR": 0.92, "PHP": 58.4}
}`

func newTestExchangeClient(t *testing.T, status int, body string) (*OpenExchangeClient, *http.Request) {
	t.Helper()
	server, last := jsonServer(t, status, body)
	c := NewOpenExchangeClient("test-app-id", testClientConfig, zap.NewNop())
	c.baseURL = server.URL
	return c, last
}

func TestLatestRates(t *testing.T) {
	c, last := newTestExchangeClient(t, http.StatusOK, ratesFixture)

	rates, err := c.Latest(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 0.92, rates["EUR"], 0.001)
	assert.Equal(t, "/latest.json", last.URL.Path)
	assert.Equal(t, "test-app-id", last.URL.Query().Get("app_id"))
}

func TestHistoricalRates(t *testing.T) {
	c, last := newTestExchangeClient(t, http.StatusOK, ratesFixture)

	date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	rates, err := c.Historical(context.Background(), date)
	require.NoError(t, err)

	assert.Len(t, rates, 3)
	assert.Equal(t, "/historical/2024-06-04.json", last.URL.Path)
}

func TestCurrencies(t *testing.T) {
	c, last := newTestExchangeClient(t, http.StatusOK, `{"USD": "United States Dollar", "EUR": "Euro"}`)

	currencies, err := c.Currencies(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Euro", currencies["EUR"])
	assert.Equal(t, "/currencies.json", last.URL.Path)
	// The public currencies table needs no credential.
	assert.Empty(t, last.URL.Query().Get("app_id"))
}

func TestRatesEmptyTableIsError(t *testing.T) {
	c, _ := newTestExchangeClient(t, http.StatusOK, `{"base":"USD","rates":{}}`)

	_, err := c.Latest(context.Background())
	assert.Error(t, err)
}

func TestCurrencySummary(t *testing.T) {
	c, _ := newTestExchangeClient(t, http.StatusOK, ratesFixture)

	summary, err := c.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "USD to EUR Exchange Rate", summary.Title)
	assert.Equal(t, "$1 = €0.92", summary.Description)
	assert.Equal(t, "Currency Exchange API", summary.APIName)
}

func TestCurrencySummaryMissingEUR(t *testing.T) {
	c, _ := newTestExchangeClient(t, http.StatusOK, `{"base":"USD","rates":{"USD":1}}`)

	_, err := c.Summary(context.Background())
	assert.Error(t, err)
}
