package domain

import "time"

// Metrics are aggregated performance numbers for one campaign over an
// observation window. Spend is in integer cents.
type Metrics struct {
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Spend       int64     `json:"spend"`
	CTR         float64   `json:"ctr"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
}
