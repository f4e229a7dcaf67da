package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ad-orchestrator/internal/core/domain"
)

// createCampaignRequest is the JSON body for campaign creation.
type createCampaignRequest struct {
	Platform string                `json:"platform"`
	Config   domain.CampaignConfig `json:"config"`
}

// handleCreateCampaign creates a campaign and returns its ID. Bad
// platforms or config shapes produce HTTP 400; internal failures HTTP 500.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), req.Platform, req.Config)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleCampaignStatus returns a snapshot of the campaign record. Unknown
// IDs produce HTTP 404.
func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.CampaignStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleOptimizeCampaign refreshes metrics and bids for the campaign and
// returns the new metrics.
func (h *Handler) handleOptimizeCampaign(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.svc.OptimizeCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, metrics)
}

type scaleCampaignRequest struct {
	Direction string `json:"direction"`
}

// handleScaleCampaign moves the campaign into a scaling status. Directions
// other than "up" and "down" produce HTTP 400.
func (h *Handler) handleScaleCampaign(w http.ResponseWriter, r *http.Request) {
	var req scaleCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.ScaleCampaign(r.Context(), chi.URLParam(r, "id"), req.Direction); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleStopCampaign removes the campaign. The delete is terminal; a
// second delete of the same ID produces HTTP 404.
func (h *Handler) handleStopCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.StopCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
