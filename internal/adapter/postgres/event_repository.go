package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/core/port"
)

// EventRepository implements port.EventRepository using pgxpool for
// PostgreSQL. Campaign records themselves are process-memory; only
// delivery events persist here.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a new repository instance.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// RecordImpression inserts an impression event with an explicit created_at.
func (r *EventRepository) RecordImpression(ctx context.Context, imp *domain.Impression) error {
	imp.CreatedAt = time.Now().UTC()
	return r.pool.QueryRow(ctx,
		`INSERT INTO impressions (token, campaign_id, user_id, cost, created_at)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		imp.Token, imp.CampaignID, imp.UserID, imp.Cost, imp.CreatedAt,
	).Scan(&imp.ID)
}

// RecordClick inserts a click event with an explicit created_at.
func (r *EventRepository) RecordClick(ctx context.Context, click *domain.Click) error {
	click.CreatedAt = time.Now().UTC()
	return r.pool.QueryRow(ctx,
		`INSERT INTO clicks (token, impression_id, campaign_id, user_id, cost, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		click.Token, click.ImpressionID, click.CampaignID, click.UserID, click.Cost, click.CreatedAt,
	).Scan(&click.ID)
}

// FindImpressionByToken returns the impression with the given token, or
// nil when none exists.
func (r *EventRepository) FindImpressionByToken(ctx context.Context, token string) (*domain.Impression, error) {
	var imp domain.Impression
	err := r.pool.QueryRow(ctx,
		`SELECT id, token, campaign_id, user_id, cost, created_at FROM impressions WHERE token = $1`,
		token,
	).Scan(&imp.ID, &imp.Token, &imp.CampaignID, &imp.UserID, &imp.Cost, &imp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &imp, nil
}

// CampaignStats aggregates impression and click counts and summed cost for
// one campaign over a period.
func (r *EventRepository) CampaignStats(ctx context.Context, campaignID string, from, to time.Time) (port.DeliveryStats, error) {
	var stats port.DeliveryStats
	var impCost, clickCost int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(count(*),0), COALESCE(sum(cost),0) FROM impressions
		 WHERE campaign_id = $1 AND created_at >= $2 AND created_at <= $3`,
		campaignID, from, to,
	).Scan(&stats.Impressions, &impCost)
	if err != nil {
		return port.DeliveryStats{}, err
	}
	err = r.pool.QueryRow(ctx,
		`SELECT COALESCE(count(*),0), COALESCE(sum(cost),0) FROM clicks
		 WHERE campaign_id = $1 AND created_at >= $2 AND created_at <= $3`,
		campaignID, from, to,
	).Scan(&stats.Clicks, &clickCost)
	if err != nil {
		return port.DeliveryStats{}, err
	}
	stats.Cost = impCost + clickCost
	return stats, nil
}
