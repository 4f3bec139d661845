package handler

import (
	"encoding/json"
	"net/http"

	"dine24/internal/model"
	"dine24/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// MenuListResponse is the envelope for the menu list.
type MenuListResponse struct {
	Success   bool             `json:"success"`
	MenuItems []model.MenuItem `json:"menu_items"`
}

// MenuItemCreatedResponse is the envelope for a created menu item.
type MenuItemCreatedResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	MenuItem model.MenuItem `json:"menu_item"`
}

// List handles GET /api/menu requests.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	items, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MenuListResponse{
		Success:   true,
		MenuItems: items,
	})
}

// Add handles POST /api/menu requests. Auth-gated by the router.
func (h *MenuHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	item, err := h.service.Add(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, MenuItemCreatedResponse{
		Success:  true,
		Message:  "Menu item added successfully",
		MenuItem: item,
	})
}
