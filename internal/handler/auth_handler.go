package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"dine24/internal/model"
	"dine24/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles login requests.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// LoginResponse is the success envelope for POST /api/auth/login.
type LoginResponse struct {
	Success bool              `json:"success"`
	Token   string            `json:"token"`
	User    model.UserSummary `json:"user"`
}

// loginFailure is the failure envelope for POST /api/auth/login.
type loginFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, loginFailure{Message: "invalid request body"})
		return
	}

	token, user, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, loginFailure{Message: "Invalid credentials"})
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to log in", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Token:   token,
		User:    user,
	})
}
