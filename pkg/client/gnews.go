package client

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"dashboard-aggregator/internal/models"
)

// GNewsClient calls the GNews top-headlines API. An empty query returns the
// general top headlines; a non-empty query filters them.
type GNewsClient struct {
	*BaseClient
	apiKey  string
	baseURL string
}

type gnewsResponse struct {
	TotalArticles int `json:"totalArticles"`
	Articles      []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"source"`
	} `json:"articles"`
}

func NewGNewsClient(apiKey string, config ClientConfig, logger *zap.Logger) *GNewsClient {
	return &GNewsClient{
		BaseClient: NewBaseClient("gnews", config, logger),
		apiKey:     apiKey,
		baseURL:    "https://gnews.io/api/v4",
	}
}

// TopHeadlines returns up to max English headlines, optionally filtered by
// query.
func (c *GNewsClient) TopHeadlines(ctx context.Context, query string, max int) ([]models.Article, error) {
	endpoint := fmt.Sprintf("%s/top-headlines?token=%s&lang=en&max=%d", c.baseURL, c.apiKey, max)
	if query != "" {
		endpoint += "&q=" + url.QueryEscape(query)
	}

	var response gnewsResponse
	if err := c.GetJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}

	articles := make([]models.Article, 0, len(response.Articles))
	for _, item := range response.Articles {
		articles = append(articles, models.Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			Image:       item.Image,
			Published:   item.PublishedAt,
			Source:      item.Source.Name,
		})
	}
	return articles, nil
}

// Summary extracts the top headline for the dashboard tile.
func (c *GNewsClient) Summary(ctx context.Context) (models.SourceSummary, error) {
	articles, err := c.TopHeadlines(ctx, "", 1)
	if err != nil {
		return models.SourceSummary{}, err
	}
	if len(articles) == 0 {
		return models.SourceSummary{}, fmt.Errorf("no news found")
	}

	top := articles[0]
	image := top.Image
	if image == "" {
		image = models.PlaceholderImage("GNews")
	}

	return models.SourceSummary{
		Title:       top.Title,
		Description: top.Description,
		APIName:     "GNews API",
		Image:       image,
	}, nil
}
