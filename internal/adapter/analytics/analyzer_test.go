package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/core/port"
)

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) RecordImpression(ctx context.Context, imp *domain.Impression) error {
	return m.Called(ctx, imp).Error(0)
}

func (m *mockEventRepo) RecordClick(ctx context.Context, click *domain.Click) error {
	return m.Called(ctx, click).Error(0)
}

func (m *mockEventRepo) FindImpressionByToken(ctx context.Context, token string) (*domain.Impression, error) {
	args := m.Called(ctx, token)
	imp, _ := args.Get(0).(*domain.Impression)
	return imp, args.Error(1)
}

func (m *mockEventRepo) CampaignStats(ctx context.Context, campaignID string, from, to time.Time) (port.DeliveryStats, error) {
	args := m.Called(ctx, campaignID, from, to)
	return args.Get(0).(port.DeliveryStats), args.Error(1)
}

func TestAnalyzeCampaignDerivesCTR(t *testing.T) {
	repo := &mockEventRepo{}
	a := NewAnalyzer(repo)
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	repo.On("CampaignStats", mock.Anything, "facebook_camp_1", now.Add(-DefaultWindow), now).
		Return(port.DeliveryStats{Impressions: 2_000, Clicks: 50, Cost: 1234}, nil)

	m, err := a.AnalyzeCampaign(context.Background(), "facebook_camp_1")
	require.NoError(t, err)
	require.EqualValues(t, 2_000, m.Impressions)
	require.EqualValues(t, 50, m.Clicks)
	require.EqualValues(t, 1234, m.Spend)
	require.InDelta(t, 0.025, m.CTR, 1e-9)
	require.Equal(t, now.Add(-DefaultWindow), m.From)
	require.Equal(t, now, m.To)
}

func TestAnalyzeCampaignNoEvents(t *testing.T) {
	repo := &mockEventRepo{}
	a := NewAnalyzer(repo)

	repo.On("CampaignStats", mock.Anything, "twitter_camp_3", mock.Anything, mock.Anything).
		Return(port.DeliveryStats{}, nil)

	m, err := a.AnalyzeCampaign(context.Background(), "twitter_camp_3")
	require.NoError(t, err)
	require.Zero(t, m.Impressions)
	require.Zero(t, m.CTR)
}

func TestAnalyzeCampaignPropagatesStoreErrors(t *testing.T) {
	repo := &mockEventRepo{}
	a := NewAnalyzer(repo)
	storeErr := errors.New("connection refused")

	repo.On("CampaignStats", mock.Anything, "google_ads_camp_2", mock.Anything, mock.Anything).
		Return(port.DeliveryStats{}, storeErr)

	_, err := a.AnalyzeCampaign(context.Background(), "google_ads_camp_2")
	require.ErrorIs(t, err, storeErr)
}
