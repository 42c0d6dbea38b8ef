package models

// RateTable maps a 3-letter currency code to its rate relative to the base
// currency (USD for the upstream provider).
type RateTable map[string]float64

// RateReport combines the current and one-month-historical tables with the
// per-code percent change. A change of "N/A" means one of the tables lacks
// the code.
type RateReport struct {
	Base       string            `json:"base"`
	Rates      RateTable         `json:"rates"`
	Historical RateTable         `json:"historical"`
	Changes    map[string]string `json:"changes"`
	Currencies map[string]string `json:"currencies,omitempty"`
}

// Conversion is the result of converting an amount between two codes present
// in the rate table.
type Conversion struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
}
