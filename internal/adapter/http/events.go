package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ad-orchestrator/internal/core/domain"
)

var perThousand = decimal.NewFromInt(1000)

// impressionRequest is the JSON body for recording an ad impression.
type impressionRequest struct {
	CampaignID string `json:"campaign_id"`
	UserID     string `json:"user_id"`
}

// handleImpression records that an ad was shown. The cost is one
// thousandth of the campaign's current CPM bid, rounded up to a whole
// cent. The response carries the click token for the tracking URL.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	var req impressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.CampaignStatus(r.Context(), req.CampaignID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	imp := domain.Impression{
		Token:      uuid.NewString(),
		CampaignID: c.ID,
		UserID:     req.UserID,
		Cost:       c.Bids.CPM.Div(perThousand).Ceil().IntPart(),
	}
	if err = h.events.RecordImpression(r.Context(), &imp); err != nil {
		h.logger.Error("record impression error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{
		"token":     imp.Token,
		"click_url": "/api/v1/events/clicks/" + imp.Token,
	})
}

// handleClick records a click for a previously served impression and
// redirects to the campaign landing URL. Unknown tokens produce HTTP 404.
// Clicks for campaigns stopped since the impression are still recorded,
// but there is nowhere left to redirect, so the response is HTTP 204.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}
	imp, err := h.events.FindImpressionByToken(r.Context(), token)
	if err != nil {
		h.logger.Error("find impression error", slog.Any("error", err))
		http.NotFound(w, r)
		return
	}
	if imp == nil {
		http.NotFound(w, r)
		return
	}

	click := domain.Click{
		Token:        token,
		ImpressionID: &imp.ID,
		CampaignID:   imp.CampaignID,
		UserID:       imp.UserID,
	}
	landingURL := ""
	if c, err := h.svc.CampaignStatus(r.Context(), imp.CampaignID); err == nil {
		click.Cost = c.Bids.CPC.Ceil().IntPart()
		landingURL = c.Config.LandingURL
	}
	if err = h.events.RecordClick(r.Context(), &click); err != nil {
		// duplicate click tokens are treated as idempotent
		h.logger.Warn("record click error", slog.Any("error", err))
	}
	if landingURL == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, landingURL, http.StatusFound)
}
