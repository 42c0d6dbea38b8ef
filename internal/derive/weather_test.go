package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconFor(t *testing.T) {
	tests := []struct {
		condition string
		expected  string
	}{
		{"clear", IconClear},
		{"Clear", IconClear},
		{"rain", IconRain},
		{"RAIN", IconRain},
		{"Clouds", IconClouds},
		{"clouds", IconClouds},
		{"cloudy", IconClouds},
		{"snow", IconSnow},
		{"  snow  ", IconSnow},
		// Unknown conditions fall back to the clear icon.
		{"tornado", IconClear},
		{"", IconClear},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			assert.Equal(t, tt.expected, IconFor(tt.condition))
		})
	}
}

func TestIconForCaseInsensitive(t *testing.T) {
	assert.Equal(t, IconFor("Clouds"), IconFor("clouds"))
}

func TestFormatLocalDateTime(t *testing.T) {
	got := FormatLocalDateTime("2024-07-04T15:30:00Z", "UTC")
	assert.Equal(t, "Thursday, July 4, 2024, 3:30:00 PM", got)
}

func TestFormatLocalDateTimeTimezone(t *testing.T) {
	// Manila is UTC+8.
	got := FormatLocalDateTime("2024-07-04T15:30:00Z", "Asia/Manila")
	assert.Equal(t, "Thursday, July 4, 2024, 11:30:00 PM", got)
}

func TestFormatLocalDateTimeBareTimestamp(t *testing.T) {
	got := FormatLocalDateTime("2024-07-04T15:30:00", "UTC")
	assert.Equal(t, "Thursday, July 4, 2024, 3:30:00 PM", got)

	// A zone-less timestamp is already local to the timezone, not UTC.
	got = FormatLocalDateTime("2024-07-04T15:30:00", "Asia/Manila")
	assert.Equal(t, "Thursday, July 4, 2024, 3:30:00 PM", got)
}

func TestFormatLocalDateTimeInvalid(t *testing.T) {
	assert.Equal(t, DateNotAvailable, FormatLocalDateTime("not-a-date", "UTC"))
	assert.Equal(t, DateNotAvailable, FormatLocalDateTime("", "UTC"))
	assert.Equal(t, DateNotAvailable, FormatLocalDateTime("2024-07-04T15:30:00Z", "Not/AZone"))
}
