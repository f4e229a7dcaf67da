package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a campaign. Stopped campaigns are
// removed from the table rather than flagged, so there is no stopped value.
type Status string

const (
	StatusRunning     Status = "running"
	StatusScalingUp   Status = "scaling_up"
	StatusScalingDown Status = "scaling_down"
)

// Bids holds the current monetary bids for a campaign. Values are in
// integer cents carried as decimals so adjustments keep sub-cent precision.
type Bids struct {
	CPM decimal.Decimal `json:"cpm"` // cost per thousand impressions
	CPC decimal.Decimal `json:"cpc"` // cost per click
}

// Campaign represents a tracked advertising run on one platform.
type Campaign struct {
	ID          string          `json:"id"`
	Platform    Platform        `json:"platform"`
	Config      CampaignConfig  `json:"config"`
	Content     AdContent       `json:"content"`
	Audience    Audience        `json:"audience"`
	Bids        Bids            `json:"bids"`
	Status      Status          `json:"status"`
	StartTime   time.Time       `json:"start_time"`
	Performance Metrics         `json:"performance"`
	Errors      []CampaignError `json:"errors,omitempty"`
}

// CampaignError records a failed operation against a campaign.
type CampaignError struct {
	Op         string    `json:"op"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
