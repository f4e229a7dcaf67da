package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/core/port"
)

// CampaignManager orchestrates ad creation, audience targeting, bid
// optimization and performance analysis to run campaigns. It owns the
// campaign table; all mutation goes through its methods. Implements
// port.CampaignUseCase.
type CampaignManager struct {
	builders port.AdBuilderFactory
	targeter port.AudienceTargeter
	bidders  port.BidOptimizerFactory
	analyzer port.PerformanceAnalyzer
	logger   *slog.Logger

	mu        sync.RWMutex
	campaigns map[string]*domain.Campaign
	seq       int64 // guarded by mu; IDs are never reused after deletion
}

// NewCampaignManager creates a manager with the provided collaborators.
func NewCampaignManager(
	builders port.AdBuilderFactory,
	targeter port.AudienceTargeter,
	bidders port.BidOptimizerFactory,
	analyzer port.PerformanceAnalyzer,
	logger *slog.Logger,
) *CampaignManager {
	return &CampaignManager{
		builders:  builders,
		targeter:  targeter,
		bidders:   bidders,
		analyzer:  analyzer,
		logger:    logger,
		campaigns: make(map[string]*domain.Campaign),
	}
}

// CreateCampaign builds ad content, resolves the audience, sets initial
// bids and registers the campaign. Nothing is committed until every
// sub-step has succeeded.
func (m *CampaignManager) CreateCampaign(ctx context.Context, platform string, cfg domain.CampaignConfig) (string, error) {
	p, ok := domain.ParsePlatform(platform)
	if !ok {
		err := fmt.Errorf("%w: %s", port.ErrUnsupportedPlatform, platform)
		m.logger.Error("create campaign failed", slog.String("platform", platform), slog.Any("error", err))
		return "", err
	}
	if err := cfg.Validate(); err != nil {
		err = fmt.Errorf("%w: %s", port.ErrInvalidConfig, err)
		m.logger.Error("create campaign failed", slog.String("platform", platform), slog.Any("error", err))
		return "", err
	}

	builder, err := m.builders.BuilderFor(p)
	if err != nil {
		return "", m.failCreate(p, err)
	}
	content, err := builder.BuildAd(cfg)
	if err != nil {
		return "", m.failCreate(p, err)
	}
	audience, err := m.targeter.TargetAudience(cfg.Targeting)
	if err != nil {
		return "", m.failCreate(p, err)
	}
	optimizer, err := m.bidders.OptimizerFor(p)
	if err != nil {
		return "", m.failCreate(p, err)
	}
	bids, err := optimizer.SetBids(audience.Size)
	if err != nil {
		return "", m.failCreate(p, err)
	}

	m.mu.Lock()
	m.seq++
	id := fmt.Sprintf("%s_camp_%d", p, m.seq)
	m.campaigns[id] = &domain.Campaign{
		ID:        id,
		Platform:  p,
		Config:    cfg,
		Content:   content,
		Audience:  audience,
		Bids:      bids,
		Status:    domain.StatusRunning,
		StartTime: time.Now().UTC(),
	}
	m.mu.Unlock()

	m.logger.Info("campaign created",
		slog.String("campaign_id", id),
		slog.String("platform", p.String()),
		slog.Int64("audience_size", audience.Size),
	)
	return id, nil
}

// OptimizeCampaign fetches fresh metrics, adjusts bids and stores both on
// the campaign in one step, so readers never observe metrics without the
// matching bids. The status is unchanged.
func (m *CampaignManager) OptimizeCampaign(ctx context.Context, campaignID string) (domain.Metrics, error) {
	m.mu.RLock()
	c, ok := m.campaigns[campaignID]
	var p domain.Platform
	if ok {
		p = c.Platform
	}
	m.mu.RUnlock()
	if !ok {
		return domain.Metrics{}, m.failOp("optimize", campaignID, port.ErrCampaignNotFound)
	}

	metrics, err := m.analyzer.AnalyzeCampaign(ctx, campaignID)
	if err != nil {
		m.recordError(campaignID, "optimize", err)
		return domain.Metrics{}, m.failOp("optimize", campaignID, err)
	}
	optimizer, err := m.bidders.OptimizerFor(p)
	if err != nil {
		return domain.Metrics{}, m.failOp("optimize", campaignID, err)
	}
	bids, err := optimizer.AdjustBids(metrics)
	if err != nil {
		m.recordError(campaignID, "optimize", err)
		return domain.Metrics{}, m.failOp("optimize", campaignID, err)
	}

	m.mu.Lock()
	c, ok = m.campaigns[campaignID]
	if !ok {
		// stopped while we were analyzing
		m.mu.Unlock()
		return domain.Metrics{}, m.failOp("optimize", campaignID, port.ErrCampaignNotFound)
	}
	c.Performance = metrics
	c.Bids = bids
	m.mu.Unlock()

	m.logger.Info("campaign optimized",
		slog.String("campaign_id", campaignID),
		slog.Int64("impressions", metrics.Impressions),
		slog.Int64("clicks", metrics.Clicks),
		slog.Float64("ctr", metrics.CTR),
	)
	return metrics, nil
}

// ScaleCampaign moves the campaign into scaling_up or scaling_down. Only
// the status field changes; the bid optimizer owns actual spend changes.
func (m *CampaignManager) ScaleCampaign(ctx context.Context, campaignID, direction string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[campaignID]
	if !ok {
		return m.failOp("scale", campaignID, port.ErrCampaignNotFound)
	}
	var status domain.Status
	switch direction {
	case "up":
		status = domain.StatusScalingUp
	case "down":
		status = domain.StatusScalingDown
	default:
		return m.failOp("scale", campaignID, fmt.Errorf("%w: got %q", port.ErrInvalidDirection, direction))
	}
	c.Status = status
	m.logger.Info("campaign scaling",
		slog.String("campaign_id", campaignID),
		slog.String("direction", direction),
		slog.String("status", string(status)),
	)
	return nil
}

// StopCampaign removes the campaign from the table. The delete is hard:
// the record is dropped, not archived, and the ID is never reissued.
func (m *CampaignManager) StopCampaign(ctx context.Context, campaignID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.campaigns[campaignID]; !ok {
		return m.failOp("stop", campaignID, port.ErrCampaignNotFound)
	}
	delete(m.campaigns, campaignID)
	m.logger.Info("campaign stopped", slog.String("campaign_id", campaignID))
	return nil
}

// CampaignStatus returns a snapshot of the campaign record. The copy
// detaches callers from the table; mutating it has no effect.
func (m *CampaignManager) CampaignStatus(ctx context.Context, campaignID string) (domain.Campaign, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.campaigns[campaignID]
	if !ok {
		return domain.Campaign{}, fmt.Errorf("%w: %s", port.ErrCampaignNotFound, campaignID)
	}
	snapshot := *c
	snapshot.Errors = append([]domain.CampaignError(nil), c.Errors...)
	return snapshot, nil
}

// recordError appends a failure record to the campaign, if it still exists.
func (m *CampaignManager) recordError(campaignID, op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.campaigns[campaignID]; ok {
		c.Errors = append(c.Errors, domain.CampaignError{
			Op:         op,
			Message:    err.Error(),
			OccurredAt: time.Now().UTC(),
		})
	}
}

func (m *CampaignManager) failCreate(p domain.Platform, err error) error {
	err = fmt.Errorf("create campaign on %s: %w", p, err)
	m.logger.Error("create campaign failed", slog.String("platform", p.String()), slog.Any("error", err))
	return err
}

func (m *CampaignManager) failOp(op, campaignID string, err error) error {
	err = fmt.Errorf("%s campaign %s: %w", op, campaignID, err)
	m.logger.Error("campaign operation failed",
		slog.String("op", op),
		slog.String("campaign_id", campaignID),
		slog.Any("error", err),
	)
	return err
}
