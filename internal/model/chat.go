package model

import "time"

// ChatLogEntry is an append-only record of one chat exchange. No
// operation reads these back; they exist for offline inspection.
type ChatLogEntry struct {
	ID          int64     `json:"id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	CreatedAt   time.Time `json:"timestamp"`
}

// ChatRequest represents the request payload for the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// EmailRequest represents the request payload for the confirmation
// email stub. ReservationData is passed through opaquely.
type EmailRequest struct {
	To              string         `json:"to"`
	Subject         string         `json:"subject"`
	ReservationData map[string]any `json:"reservation_data,omitempty"`
}

// LoginRequest represents the admin login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserSummary is the authenticated user block returned on login.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
