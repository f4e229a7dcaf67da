// Package analytics derives campaign performance metrics from stored
// delivery events.
package analytics

import (
	"context"
	"time"

	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/core/port"
)

// DefaultWindow is the trailing observation period for metrics.
const DefaultWindow = 24 * time.Hour

// Analyzer implements port.PerformanceAnalyzer over an event repository.
type Analyzer struct {
	events port.EventRepository
	window time.Duration
	now    func() time.Time
}

// NewAnalyzer returns an analyzer reading from the given event store with
// the default trailing window.
func NewAnalyzer(events port.EventRepository) *Analyzer {
	return &Analyzer{events: events, window: DefaultWindow, now: time.Now}
}

// AnalyzeCampaign aggregates impressions, clicks and spend for the
// campaign over the trailing window and derives the click-through rate.
// A campaign with no recorded events yields zero metrics, not an error.
func (a *Analyzer) AnalyzeCampaign(ctx context.Context, campaignID string) (domain.Metrics, error) {
	to := a.now()
	from := to.Add(-a.window)
	stats, err := a.events.CampaignStats(ctx, campaignID, from, to)
	if err != nil {
		return domain.Metrics{}, err
	}
	m := domain.Metrics{
		Impressions: stats.Impressions,
		Clicks:      stats.Clicks,
		Spend:       stats.Cost,
		From:        from,
		To:          to,
	}
	if stats.Impressions > 0 {
		m.CTR = float64(stats.Clicks) / float64(stats.Impressions)
	}
	return m, nil
}
