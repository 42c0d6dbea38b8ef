package models

// SourceKey identifies one upstream data provider in the aggregated result.
type SourceKey string

const (
	SourceCurrents SourceKey = "currents"
	SourceGNews    SourceKey = "gnews"
	SourceWeather  SourceKey = "weather"
	SourceCurrency SourceKey = "currency"
	SourceYouTube  SourceKey = "youtube"
	SourceGemini   SourceKey = "gemini"
)

// SourceKeys is the fixed set of sources the aggregator queries. The
// aggregated result always contains exactly these keys.
var SourceKeys = []SourceKey{
	SourceCurrents,
	SourceGNews,
	SourceWeather,
	SourceCurrency,
	SourceYouTube,
	SourceGemini,
}

// SourceSummary is the minimal normalized shape used for compact display
// tiles. Every field is always populated; on upstream failure the fields
// carry fallback text and a placeholder image URL instead.
type SourceSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	APIName     string `json:"apiName"`
	Image       string `json:"image"`
}

// SourceEntry is one slot of the aggregated result.
type SourceEntry struct {
	Title    string        `json:"title"`
	Image    string        `json:"image"`
	APIName  string        `json:"apiName"`
	FullData SourceSummary `json:"fullData"`
}

// AggregatedResult maps every source key to its entry. Failed sources are
// represented by placeholder entries, never omitted.
type AggregatedResult map[SourceKey]SourceEntry

// PlaceholderImage builds the fallback image URL for a source label.
func PlaceholderImage(label string) string {
	return "https://via.placeholder.com/150?text=" + label
}

// PlaceholderSummary is the deterministic fallback substituted when a source
// fails, so consumers never see an empty field.
func PlaceholderSummary(sourceName, apiName, subject string) SourceSummary {
	return SourceSummary{
		Title:       sourceName + " Unavailable",
		Description: "Failed to fetch " + subject,
		APIName:     apiName,
		Image:       PlaceholderImage(sourceName + " Error"),
	}
}
