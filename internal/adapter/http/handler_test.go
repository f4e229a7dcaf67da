package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ad-orchestrator/internal/adapter/analytics"
	"ad-orchestrator/internal/adapter/bidding"
	"ad-orchestrator/internal/adapter/creative"
	"ad-orchestrator/internal/adapter/targeting"
	"ad-orchestrator/internal/adapter/usecase"
	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/core/port"
)

// memEventRepo is an in-memory port.EventRepository for handler tests.
type memEventRepo struct {
	mu          sync.Mutex
	nextID      int64
	impressions []domain.Impression
	clicks      []domain.Click
}

func (r *memEventRepo) RecordImpression(ctx context.Context, imp *domain.Impression) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	imp.ID = r.nextID
	imp.CreatedAt = time.Now().UTC()
	r.impressions = append(r.impressions, *imp)
	return nil
}

func (r *memEventRepo) RecordClick(ctx context.Context, click *domain.Click) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clicks {
		if c.Token == click.Token {
			return fmt.Errorf("duplicate click token %s", click.Token)
		}
	}
	r.nextID++
	click.ID = r.nextID
	click.CreatedAt = time.Now().UTC()
	r.clicks = append(r.clicks, *click)
	return nil
}

func (r *memEventRepo) FindImpressionByToken(ctx context.Context, token string) (*domain.Impression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.impressions {
		if r.impressions[i].Token == token {
			imp := r.impressions[i]
			return &imp, nil
		}
	}
	return nil, nil
}

func (r *memEventRepo) CampaignStats(ctx context.Context, campaignID string, from, to time.Time) (port.DeliveryStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var stats port.DeliveryStats
	for _, imp := range r.impressions {
		if imp.CampaignID == campaignID && !imp.CreatedAt.Before(from) && !imp.CreatedAt.After(to) {
			stats.Impressions++
			stats.Cost += imp.Cost
		}
	}
	for _, c := range r.clicks {
		if c.CampaignID == campaignID && !c.CreatedAt.Before(from) && !c.CreatedAt.After(to) {
			stats.Clicks++
			stats.Cost += c.Cost
		}
	}
	return stats, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *memEventRepo) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := &memEventRepo{}
	manager := usecase.NewCampaignManager(
		creative.NewFactory(),
		targeting.NewTargeter(),
		bidding.NewFactory(),
		analytics.NewAnalyzer(events),
		logger,
	)
	srv := httptest.NewServer(NewHandler(manager, events, logger).Router())
	t.Cleanup(srv.Close)
	return srv, events
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	return resp
}

func createCampaign(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp := postJSON(t, srv.URL+"/api/v1/campaigns", createCampaignRequest{
		Platform: "facebook",
		Config: domain.CampaignConfig{
			TextTemplate: "Buy now",
			Targeting:    domain.TargetingSpec{Geos: []string{"us"}},
			CallToAction: "Shop",
			LandingURL:   "https://example.com/landing",
		},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out["id"])
	return out["id"]
}

func TestCampaignLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	id := createCampaign(t, srv)
	require.Equal(t, "facebook_camp_1", id)

	// status
	resp, err := http.Get(srv.URL + "/api/v1/campaigns/" + id)
	require.NoError(t, err)
	var c domain.Campaign
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&c))
	resp.Body.Close()
	require.Equal(t, domain.StatusRunning, c.Status)

	// scale up
	resp = postJSON(t, srv.URL+"/api/v1/campaigns/"+id+"/scale", scaleCampaignRequest{Direction: "up"})
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// invalid direction
	resp = postJSON(t, srv.URL+"/api/v1/campaigns/"+id+"/scale", scaleCampaignRequest{Direction: "sideways"})
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// optimize (no events yet -> zero metrics)
	resp = postJSON(t, srv.URL+"/api/v1/campaigns/"+id+"/optimize", struct{}{})
	var m domain.Metrics
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Zero(t, m.Impressions)

	// stop, then every lookup 404s
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/campaigns/"+id, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/v1/campaigns/" + id)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCampaignBadPlatform(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := postJSON(t, srv.URL+"/api/v1/campaigns", createCampaignRequest{
		Platform: "tiktok",
		Config:   domain.CampaignConfig{TextTemplate: "x"},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownCampaignIs404(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/v1/campaigns/facebook_camp_42")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestImpressionAndClickFlow(t *testing.T) {
	srv, events := newTestServer(t)
	id := createCampaign(t, srv)

	resp := postJSON(t, srv.URL+"/api/v1/events/impressions", impressionRequest{
		CampaignID: id,
		UserID:     "user-1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	require.NotEmpty(t, out["token"])

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	clickResp, err := client.Get(srv.URL + out["click_url"])
	require.NoError(t, err)
	clickResp.Body.Close()
	require.Equal(t, http.StatusFound, clickResp.StatusCode)
	require.Equal(t, "https://example.com/landing", clickResp.Header.Get("Location"))

	require.Len(t, events.impressions, 1)
	require.Len(t, events.clicks, 1)
	require.Positive(t, events.clicks[0].Cost)

	// optimize now reflects the recorded events
	optResp := postJSON(t, srv.URL+"/api/v1/campaigns/"+id+"/optimize", struct{}{})
	var m domain.Metrics
	require.NoError(t, json.NewDecoder(optResp.Body).Decode(&m))
	optResp.Body.Close()
	require.EqualValues(t, 1, m.Impressions)
	require.EqualValues(t, 1, m.Clicks)
}

func TestImpressionForUnknownCampaign(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := postJSON(t, srv.URL+"/api/v1/events/impressions", impressionRequest{CampaignID: "nope"})
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClickUnknownToken(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/v1/events/clicks/deadbeef")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
