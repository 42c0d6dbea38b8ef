package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const gnewsFixture = `{
	"totalArticles": 1,
	"articles": [
		{
			"title": "Breaking story",
			"description": "Details inside",
			"url": "https://gnews.example.com/1",
			"image": "https://gnews.example.com/1.jpg",
			"publishedAt": "2024-07-04T10:00:00Z",
			"source": {"name": "Example Times", "url": "https://example.com"}
		}
	]
}`

func newTestGNewsClient(t *testing.T, status int, body string) (*GNewsClient, *http.Request) {
	t.Helper()
	server, last := jsonServer(t, status, body)
	c := NewGNewsClient("test-key", testClientConfig, zap.NewNop())
	c.baseURL = server.URL
	return c, last
}

func TestGNewsTopHeadlines(t *testing.T) {
	c, last := newTestGNewsClient(t, http.StatusOK, gnewsFixture)

	articles, err := c.TopHeadlines(context.Background(), "", 9)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	assert.Equal(t, "Breaking story", articles[0].Title)
	assert.Equal(t, "Example Times", articles[0].Source)
	assert.Equal(t, "/top-headlines", last.URL.Path)
	assert.Equal(t, "9", last.URL.Query().Get("max"))
	assert.Empty(t, last.URL.Query().Get("q"))
}

func TestGNewsTopHeadlinesWithQuery(t *testing.T) {
	c, last := newTestGNewsClient(t, http.StatusOK, gnewsFixture)

	_, err := c.TopHeadlines(context.Background(), "elections", 9)
	require.NoError(t, err)
	assert.Equal(t, "elections", last.URL.Query().Get("q"))
}

func TestGNewsSummary(t *testing.T) {
	c, _ := newTestGNewsClient(t, http.StatusOK, gnewsFixture)

	summary, err := c.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Breaking story", summary.Title)
	assert.Equal(t, "GNews API", summary.APIName)
}

func TestGNewsSummaryEmptyResponse(t *testing.T) {
	c, _ := newTestGNewsClient(t, http.StatusOK, `{"totalArticles":0,"articles":[]}`)

	_, err := c.Summary(context.Background())
	assert.Error(t, err)
}
