package port

import (
	"context"

	"ad-orchestrator/internal/core/domain"
)

// AdBuilder produces platform-ready ad content from a campaign config.
// Builders are constructed per platform by an AdBuilderFactory and carry
// their platform; content never guesses where it will run.
type AdBuilder interface {
	BuildAd(cfg domain.CampaignConfig) (domain.AdContent, error)
}

// AdBuilderFactory resolves a platform to its ad builder. Unsupported
// platforms fail with ErrUnsupportedPlatform.
type AdBuilderFactory interface {
	BuilderFor(p domain.Platform) (AdBuilder, error)
}

// AudienceTargeter estimates the audience a targeting spec reaches.
type AudienceTargeter interface {
	TargetAudience(spec domain.TargetingSpec) (domain.Audience, error)
}

// BidOptimizer manages monetary bids for one platform. SetBids derives
// initial bids from audience size; AdjustBids moves them based on observed
// performance. Implementations must be safe for concurrent use.
type BidOptimizer interface {
	SetBids(audienceSize int64) (domain.Bids, error)
	AdjustBids(m domain.Metrics) (domain.Bids, error)
}

// BidOptimizerFactory resolves a platform to its bid optimizer.
type BidOptimizerFactory interface {
	OptimizerFor(p domain.Platform) (BidOptimizer, error)
}

// PerformanceAnalyzer computes aggregated metrics for a campaign.
type PerformanceAnalyzer interface {
	AnalyzeCampaign(ctx context.Context, campaignID string) (domain.Metrics, error)
}
