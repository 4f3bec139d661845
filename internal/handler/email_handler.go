package handler

import (
	"encoding/json"
	"net/http"

	"dine24/internal/model"
	"dine24/internal/service"

	"github.com/rs/zerolog"
)

// EmailHandler handles the confirmation email stub endpoint.
type EmailHandler struct {
	service service.EmailService
	logger  zerolog.Logger
}

// NewEmailHandler creates a new email handler.
func NewEmailHandler(service service.EmailService, logger zerolog.Logger) *EmailHandler {
	return &EmailHandler{
		service: service,
		logger:  logger.With().Str("handler", "email").Logger(),
	}
}

// EmailResponse is the acknowledgement envelope.
type EmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send handles POST /api/send-email requests.
func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.SendConfirmation(r.Context(), &req); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, EmailResponse{
		Success: true,
		Message: "Confirmation email sent successfully",
	})
}
