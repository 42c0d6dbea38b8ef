package client

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"go.uber.org/zap"

	"dashboard-aggregator/internal/derive"
	"dashboard-aggregator/internal/models"
)

const weatherIconSetURL = "https://raw.githubusercontent.com/visualcrossing/WeatherIcons/main/PNG/2nd%20Set%20-%20Color"

// VisualCrossingClient calls the Visual Crossing timeline API for current
// conditions and the daily/hourly forecast of a city.
type VisualCrossingClient struct {
	*BaseClient
	apiKey  string
	baseURL string
}

type visualCrossingConditions struct {
	Datetime   string  `json:"datetime"`
	Temp       float64 `json:"temp"`
	FeelsLike  float64 `json:"feelslike"`
	Humidity   float64 `json:"humidity"`
	WindSpeed  float64 `json:"windspeed"`
	Precip     float64 `json:"precip"`
	Conditions string  `json:"conditions"`
	Icon       string  `json:"icon"`
}

type visualCrossingDay struct {
	Datetime   string                     `json:"datetime"`
	TempMax    float64                    `json:"tempmax"`
	TempMin    float64                    `json:"tempmin"`
	Temp       float64                    `json:"temp"`
	Humidity   float64                    `json:"humidity"`
	Conditions string                     `json:"conditions"`
	Icon       string                     `json:"icon"`
	Hours      []visualCrossingConditions `json:"hours"`
}

type visualCrossingResponse struct {
	ResolvedAddress   string                   `json:"resolvedAddress"`
	Address           string                   `json:"address"`
	Timezone          string                   `json:"timezone"`
	Description       string                   `json:"description"`
	CurrentConditions visualCrossingConditions `json:"currentConditions"`
	Days              []visualCrossingDay      `json:"days"`
}

func NewVisualCrossingClient(apiKey string, config ClientConfig, logger *zap.Logger) *VisualCrossingClient {
	return &VisualCrossingClient{
		BaseClient: NewBaseClient("weather", config, logger),
		apiKey:     apiKey,
		baseURL:    "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline",
	}
}

// Timeline fetches a weather snapshot for a city. Refetched on every call;
// nothing is cached between queries.
func (c *VisualCrossingClient) Timeline(ctx context.Context, city string) (*models.WeatherSnapshot, error) {
	endpoint := fmt.Sprintf("%s/%s?unitGroup=metric&key=%s&contentType=json",
		c.baseURL, url.PathEscape(city), c.apiKey)

	var response visualCrossingResponse
	if err := c.GetJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}

	current := response.CurrentConditions

	// A decodable body with none of the expected content is as unavailable
	// as a failed request.
	if response.ResolvedAddress == "" && response.Address == "" &&
		current.Conditions == "" && current.Icon == "" && len(response.Days) == 0 {
		return nil, fmt.Errorf("no weather data in response")
	}
	snapshot := &models.WeatherSnapshot{
		City:        response.ResolvedAddress,
		Timezone:    response.Timezone,
		Description: response.Description,
		Temperature: current.Temp,
		FeelsLike:   current.FeelsLike,
		Humidity:    current.Humidity,
		WindSpeed:   current.WindSpeed,
		Conditions:  current.Conditions,
		Icon:        conditionIcon(current),
	}
	if snapshot.City == "" {
		snapshot.City = response.Address
	}

	for _, day := range response.Days {
		forecast := models.DayForecast{
			Date:       day.Datetime,
			MaxTemp:    day.TempMax,
			MinTemp:    day.TempMin,
			AvgTemp:    day.Temp,
			Humidity:   day.Humidity,
			Conditions: day.Conditions,
			Icon:       day.Icon,
		}
		for _, hour := range day.Hours {
			forecast.Hours = append(forecast.Hours, models.HourConditions{
				Time:          hour.Datetime,
				Temperature:   hour.Temp,
				Humidity:      hour.Humidity,
				Precipitation: hour.Precip,
				Conditions:    hour.Conditions,
				Icon:          hour.Icon,
			})
		}
		snapshot.Days = append(snapshot.Days, forecast)
	}

	if len(response.Days) > 0 {
		snapshot.LocalTime = derive.FormatLocalDateTime(
			response.Days[0].Datetime+"T"+current.Datetime,
			response.Timezone)
	} else {
		snapshot.LocalTime = derive.DateNotAvailable
	}

	return snapshot, nil
}

// Summary fetches conditions for the default city and shapes them into a
// dashboard tile.
func (c *VisualCrossingClient) Summary(ctx context.Context, city string) (models.SourceSummary, error) {
	snapshot, err := c.Timeline(ctx, city)
	if err != nil {
		return models.SourceSummary{}, err
	}

	return models.SourceSummary{
		Title:       fmt.Sprintf("%d°C, %s", int(math.Round(snapshot.Temperature)), snapshot.Conditions),
		Description: fmt.Sprintf("%s: %s", city, snapshot.Conditions),
		APIName:     "Visual Crossing API",
		Image:       fmt.Sprintf("%s/%s.png", weatherIconSetURL, snapshot.Icon),
	}, nil
}

// conditionIcon prefers the upstream icon keyword and falls back to matching
// the condition text when it is absent.
func conditionIcon(current visualCrossingConditions) string {
	if current.Icon != "" {
		return current.Icon
	}
	return derive.IconFor(current.Conditions)
}
