package client

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"dashboard-aggregator/internal/models"
)

const currentsSourceName = "Currents News"

// CurrentsClient calls the Currents news API (latest headlines and keyword
// search).
type CurrentsClient struct {
	*BaseClient
	apiKey  string
	baseURL string
}

type currentsResponse struct {
	Status string `json:"status"`
	News   []struct {
		ID          string   `json:"id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		URL         string   `json:"url"`
		Image       string   `json:"image"`
		Published   string   `json:"published"`
		Category    []string `json:"category"`
	} `json:"news"`
}

func NewCurrentsClient(apiKey string, config ClientConfig, logger *zap.Logger) *CurrentsClient {
	return &CurrentsClient{
		BaseClient: NewBaseClient("currents", config, logger),
		apiKey:     apiKey,
		baseURL:    "https://api.currentsapi.services/v1",
	}
}

// Latest returns up to limit of the most recent English headlines.
func (c *CurrentsClient) Latest(ctx context.Context, limit int) ([]models.Article, error) {
	endpoint := fmt.Sprintf("%s/latest-news?language=en&apiKey=%s&limit=%d", c.baseURL, c.apiKey, limit)
	return c.fetchArticles(ctx, endpoint)
}

// Search returns up to limit headlines matching the keywords.
func (c *CurrentsClient) Search(ctx context.Context, keywords string, limit int) ([]models.Article, error) {
	endpoint := fmt.Sprintf("%s/search?language=en&apiKey=%s&keywords=%s&limit=%d",
		c.baseURL, c.apiKey, url.QueryEscape(keywords), limit)
	return c.fetchArticles(ctx, endpoint)
}

func (c *CurrentsClient) fetchArticles(ctx context.Context, endpoint string) ([]models.Article, error) {
	var response currentsResponse
	if err := c.GetJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}

	articles := make([]models.Article, 0, len(response.News))
	for _, item := range response.News {
		articles = append(articles, models.Article{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			Image:       item.Image,
			Published:   item.Published,
			Categories:  item.Category,
		})
	}
	return articles, nil
}

// Summary extracts the top headline for the dashboard tile.
func (c *CurrentsClient) Summary(ctx context.Context) (models.SourceSummary, error) {
	articles, err := c.Latest(ctx, 1)
	if err != nil {
		return models.SourceSummary{}, err
	}
	if len(articles) == 0 {
		return models.SourceSummary{}, fmt.Errorf("no news found")
	}

	top := articles[0]
	image := top.Image
	if image == "" {
		image = models.PlaceholderImage(currentsSourceName)
	}

	return models.SourceSummary{
		Title:       top.Title,
		Description: top.Description,
		APIName:     "Currents API",
		Image:       image,
	}, nil
}
