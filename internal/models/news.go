package models

// Article is a normalized news item from either news source.
type Article struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Image       string   `json:"image"`
	Published   string   `json:"published"`
	Source      string   `json:"source,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}
