package derive

import (
	"strings"
	"time"
)

// Icon identifiers matching the Visual Crossing color icon set.
const (
	IconClear  = "clear-day"
	IconRain   = "rain"
	IconClouds = "cloudy"
	IconSnow   = "snow"
)

// DateNotAvailable is returned instead of a formatted date when the input
// cannot be parsed.
const DateNotAvailable = "Date not available"

// IconFor maps a condition keyword to an icon identifier. Matching is
// case-insensitive over a fixed keyword set; unknown conditions resolve to the
// clear icon rather than erroring.
func IconFor(condition string) string {
	switch strings.ToLower(strings.TrimSpace(condition)) {
	case "clear":
		return IconClear
	case "rain":
		return IconRain
	case "clouds", "cloudy":
		return IconClouds
	case "snow":
		return IconSnow
	default:
		return IconClear
	}
}

const localDateTimeLayout = "Monday, January 2, 2006, 3:04:05 PM"

// FormatLocalDateTime renders an ISO timestamp in the given IANA timezone.
// A timestamp without zone information is treated as already local to that
// timezone. Unparseable input or an unknown timezone yields DateNotAvailable,
// never an error.
func FormatLocalDateTime(iso, timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return DateNotAvailable
	}
	t, err := parseISO(iso, loc)
	if err != nil {
		return DateNotAvailable
	}
	return t.In(loc).Format(localDateTimeLayout)
}

func parseISO(iso string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return t, nil
	}

	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, iso, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
