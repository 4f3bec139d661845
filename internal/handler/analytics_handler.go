package handler

import (
	"net/http"

	"dine24/internal/model"
	"dine24/internal/service"

	"github.com/rs/zerolog"
)

// AnalyticsHandler handles the admin analytics endpoint.
type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  zerolog.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service service.AnalyticsService, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger.With().Str("handler", "analytics").Logger(),
	}
}

// AnalyticsResponse is the envelope for the dashboard summary.
type AnalyticsResponse struct {
	Success   bool            `json:"success"`
	Analytics model.Analytics `json:"analytics"`
}

// Summary handles GET /api/analytics requests. Auth-gated by the router.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, AnalyticsResponse{
		Success:   true,
		Analytics: summary,
	})
}
