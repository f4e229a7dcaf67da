package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ad-orchestrator/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign use case, the delivery-event repository and a
// logger for structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	events port.EventRepository
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, events port.EventRepository, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, events: events, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/{id}", h.handleCampaignStatus)
		r.Post("/campaigns/{id}/optimize", h.handleOptimizeCampaign)
		r.Post("/campaigns/{id}/scale", h.handleScaleCampaign)
		r.Delete("/campaigns/{id}", h.handleStopCampaign)

		r.Post("/events/impressions", h.handleImpression)
		r.Get("/events/clicks/{token}", h.handleClick)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeError maps use-case sentinel errors onto HTTP status codes.
// Anything unrecognized is an internal error and gets logged.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrUnsupportedPlatform),
		errors.Is(err, port.ErrInvalidConfig),
		errors.Is(err, port.ErrInvalidDirection):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON encodes v with the given status. Encoding failures are logged;
// by then the status line is already out.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
