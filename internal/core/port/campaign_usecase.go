package port

import (
	"context"

	"ad-orchestrator/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the
// orchestrator. This interface is the primary port into the application
// domain; mock implementations can be generated from it for testing.
type CampaignUseCase interface {
	// CreateCampaign builds ad content, resolves the audience and sets
	// initial bids, then registers the campaign and returns its ID. No
	// partial record is committed when any sub-step fails.
	CreateCampaign(ctx context.Context, platform string, cfg domain.CampaignConfig) (string, error)

	// OptimizeCampaign fetches fresh performance metrics, adjusts bids and
	// stores the metrics on the campaign. The campaign status is unchanged.
	OptimizeCampaign(ctx context.Context, campaignID string) (domain.Metrics, error)

	// ScaleCampaign moves the campaign into scaling_up or scaling_down.
	// Only the status changes; bid adjustments are the optimizer's job.
	ScaleCampaign(ctx context.Context, campaignID, direction string) error

	// StopCampaign removes the campaign from the table. Removal is
	// terminal; the ID is never reissued.
	StopCampaign(ctx context.Context, campaignID string) error

	// CampaignStatus returns a snapshot of the campaign record.
	CampaignStatus(ctx context.Context, campaignID string) (domain.Campaign, error)
}
