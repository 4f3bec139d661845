package handler

import (
	"encoding/json"
	"net/http"

	"dine24/internal/model"
	"dine24/internal/service"

	"github.com/rs/zerolog"
)

// ReservationHandler handles reservation-related HTTP requests.
type ReservationHandler struct {
	service service.ReservationService
	logger  zerolog.Logger
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(service service.ReservationService, logger zerolog.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		logger:  logger.With().Str("handler", "reservation").Logger(),
	}
}

// ReservationCreatedResponse is the envelope for a created reservation.
type ReservationCreatedResponse struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	Reservation model.Reservation `json:"reservation"`
}

// ReservationListResponse is the envelope for the reservation list.
type ReservationListResponse struct {
	Success      bool                `json:"success"`
	Reservations []model.Reservation `json:"reservations"`
}

// Create handles POST /api/reservations requests.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	reservation, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, ReservationCreatedResponse{
		Success:     true,
		Message:     "Reservation created successfully",
		Reservation: reservation,
	})
}

// List handles GET /api/reservations requests. The router wraps this
// with the bearer-token gate; an unauthenticated request never gets
// here.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	reservations, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ReservationListResponse{
		Success:      true,
		Reservations: reservations,
	})
}
