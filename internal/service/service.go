package service

import (
	"context"

	"dine24/internal/model"
)

// AuthService defines the admin login operation.
type AuthService interface {
	// Login checks the credentials against the configured admin
	// identity and returns a signed token plus a user summary.
	// Fails with model.ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, req *model.LoginRequest) (string, model.UserSummary, error)
}

// ReservationService defines operations for table reservations.
type ReservationService interface {
	// Create validates the request and stores a confirmed reservation.
	Create(ctx context.Context, req *model.ReservationRequest) (model.Reservation, error)

	// List retrieves all reservations in insertion order.
	List(ctx context.Context) ([]model.Reservation, error)
}

// MenuService defines operations for the restaurant menu.
type MenuService interface {
	// Add validates the request and stores a new menu item.
	Add(ctx context.Context, req *model.MenuItemRequest) (model.MenuItem, error)

	// List retrieves all menu items in insertion order.
	List(ctx context.Context) ([]model.MenuItem, error)

	// SeedSampleItems inserts the demo menu if those dishes are not
	// already present.
	SeedSampleItems(ctx context.Context) error
}

// ChatService answers chat messages and logs each exchange.
type ChatService interface {
	// Chat returns the canned response for the message. The chat log
	// append is fire-and-forget: append failures never fail the chat.
	Chat(ctx context.Context, message string) (string, error)
}

// AnalyticsService computes the admin dashboard summary.
type AnalyticsService interface {
	// Summary aggregates reservation and menu counts plus total
	// revenue; display-only fields come from configuration.
	Summary(ctx context.Context) (model.Analytics, error)
}

// EmailService is the confirmation email stub. Nothing is delivered;
// the send is logged and acknowledged.
type EmailService interface {
	SendConfirmation(ctx context.Context, req *model.EmailRequest) error
}
