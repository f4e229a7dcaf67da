package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo delivery events for the given campaign IDs, spread over
// the last 24 hours so the analyzer window picks them up. Roughly one in
// ten impressions gets a click.
func Seed(ctx context.Context, db *pgxpool.Pool, campaignIDs []string) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, campaignID := range campaignIDs {
		impCount := 200 + r.Intn(300)
		for i := 0; i < impCount; i++ {
			token := uuid.NewString()
			userID := fmt.Sprintf("user-%d", r.Intn(100)+1)
			cost := int64(1) // ~1 cent per impression at demo CPM
			createdAt := time.Now().UTC().Add(-time.Duration(r.Intn(24*3600)) * time.Second)

			var impID int64
			err := db.QueryRow(ctx, `INSERT INTO impressions
(token, campaign_id, user_id, cost, created_at)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING RETURNING id`,
				token, campaignID, userID, cost, createdAt).Scan(&impID)
			if err != nil {
				return err
			}

			if r.Intn(10) != 0 {
				continue
			}
			clickCost := int64(50) // 0.50 per click
			_, err = db.Exec(ctx, `INSERT INTO clicks
(token, impression_id, campaign_id, user_id, cost, created_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
				token, impID, campaignID, userID, clickCost, createdAt.Add(time.Minute))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
