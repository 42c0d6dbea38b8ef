// Package derive holds the pure computations layered on top of fetched data:
// currency conversion, percent change between rate tables, weather icon
// selection, and locale-aware date formatting.
package derive

import (
	"math"

	"dashboard-aggregator/internal/models"
)

// Convert computes amount / rates[from] * rates[to] rounded to 2 decimals.
// The second return value is false when either code is absent from the table;
// no value is produced in that case.
func Convert(amount float64, from, to string, rates models.RateTable) (float64, bool) {
	fromRate, okFrom := rates[from]
	toRate, okTo := rates[to]
	if !okFrom || !okTo {
		return 0, false
	}
	return round2(amount / fromRate * toRate), true
}

// PercentChange computes (current - historical) / historical * 100 rounded to
// 2 decimals for one code. The second return value is false when either table
// lacks the code; callers render that as "N/A".
func PercentChange(code string, current, historical models.RateTable) (float64, bool) {
	cur, okCur := current[code]
	hist, okHist := historical[code]
	if !okCur || !okHist {
		return 0, false
	}
	return round2((cur - hist) / hist * 100), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
