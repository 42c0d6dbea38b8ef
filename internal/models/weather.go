package models

// HourConditions is one hourly entry of the forecast sequence used for
// charting.
type HourConditions struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
	Conditions    string  `json:"conditions"`
	Icon          string  `json:"icon"`
}

// DayForecast is one daily entry of the forecast sequence.
type DayForecast struct {
	Date       string           `json:"date"`
	MaxTemp    float64          `json:"max_temp"`
	MinTemp    float64          `json:"min_temp"`
	AvgTemp    float64          `json:"avg_temp"`
	Humidity   float64          `json:"humidity"`
	Conditions string           `json:"conditions"`
	Icon       string           `json:"icon"`
	Hours      []HourConditions `json:"hours,omitempty"`
}

// WeatherSnapshot is the current conditions for a city plus the forecast
// sequence. Refetched on every request; never cached.
type WeatherSnapshot struct {
	City        string        `json:"city"`
	Timezone    string        `json:"timezone"`
	Description string        `json:"description"`
	LocalTime   string        `json:"local_time"`
	Temperature float64       `json:"temperature"`
	FeelsLike   float64       `json:"feels_like"`
	Humidity    float64       `json:"humidity"`
	WindSpeed   float64       `json:"wind_speed"`
	Conditions  string        `json:"conditions"`
	Icon        string        `json:"icon"`
	Days        []DayForecast `json:"days"`
}
