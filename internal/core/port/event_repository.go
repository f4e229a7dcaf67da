package port

import (
	"context"
	"time"

	"ad-orchestrator/internal/core/domain"
)

// DeliveryStats contains aggregated event counts and cost for one
// campaign. Cost sums impression and click costs in integer cents.
type DeliveryStats struct {
	Impressions int64
	Clicks      int64
	Cost        int64
}

// EventRepository is the persistence layer for delivery events. It is an
// outbound port; implementations must be concurrency-safe.
type EventRepository interface {
	// RecordImpression stores an impression event, assigning ID and CreatedAt.
	RecordImpression(ctx context.Context, imp *domain.Impression) error
	// RecordClick stores a click event, assigning ID and CreatedAt.
	RecordClick(ctx context.Context, click *domain.Click) error
	// FindImpressionByToken returns the impression with the given token,
	// or nil when no such impression exists.
	FindImpressionByToken(ctx context.Context, token string) (*domain.Impression, error)
	// CampaignStats aggregates events for a campaign over a period.
	CampaignStats(ctx context.Context, campaignID string, from, to time.Time) (DeliveryStats, error)
}
