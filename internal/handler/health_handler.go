package handler

import (
	"net/http"
	"time"
)

// HealthResponse is the health check envelope.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health handles GET /api/health requests.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Message:   "DINE24 backend is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
