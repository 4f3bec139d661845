package handler

import (
	"encoding/json"
	"net/http"

	"dine24/internal/model"
	"dine24/internal/service"

	"github.com/rs/zerolog"
)

// ChatHandler handles chatbot HTTP requests.
type ChatHandler struct {
	service service.ChatService
	logger  zerolog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(service service.ChatService, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger.With().Str("handler", "chat").Logger(),
	}
}

// ChatResponse is the envelope for a chat answer.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// Chat handles POST /api/ai-chat requests.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	response, err := h.service.Chat(r.Context(), req.Message)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Success:  true,
		Response: response,
	})
}
