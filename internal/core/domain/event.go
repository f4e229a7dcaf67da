package domain

import "time"

// Impression is a record of an ad being shown for a campaign.
type Impression struct {
	ID         int64
	Token      string
	CampaignID string
	UserID     string
	Cost       int64 // cents
	CreatedAt  time.Time
}

// Click is a record of a click event.
type Click struct {
	ID           int64
	Token        string
	ImpressionID *int64
	CampaignID   string
	UserID       string
	Cost         int64 // cents
	CreatedAt    time.Time
}
