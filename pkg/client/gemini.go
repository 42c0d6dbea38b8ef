package client

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"dashboard-aggregator/internal/models"
)

// DefaultInsightPrompt is the prompt used for the dashboard tile.
const DefaultInsightPrompt = "Give me a brief insight about today's global trends"

// GeminiClient calls the generative-text completion endpoint.
type GeminiClient struct {
	*BaseClient
	apiKey  string
	baseURL string
	model   string
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func NewGeminiClient(apiKey string, config ClientConfig, logger *zap.Logger) *GeminiClient {
	return &GeminiClient{
		BaseClient: NewBaseClient("gemini", config, logger),
		apiKey:     apiKey,
		baseURL:    "https://generativelanguage.googleapis.com/v1beta",
		model:      "gemini-1.5-flash-latest",
	}
}

// Generate sends a prompt and returns the raw response text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	var response geminiResponse
	if err := c.PostJSON(ctx, endpoint, payload, &response); err != nil {
		return "", fmt.Errorf("failed to fetch completion: %w", err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	return response.Candidates[0].Content.Parts[0].Text, nil
}

// Summary generates the default insight for the dashboard tile.
func (c *GeminiClient) Summary(ctx context.Context) (models.SourceSummary, error) {
	text, err := c.Generate(ctx, DefaultInsightPrompt)
	if err != nil {
		return models.SourceSummary{}, err
	}

	return models.SourceSummary{
		Title:       "Gemini AI Insight",
		Description: text,
		APIName:     "Gemini AI API",
		Image:       models.PlaceholderImage("Gemini AI"),
	}, nil
}
