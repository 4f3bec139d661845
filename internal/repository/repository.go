package repository

import (
	"context"

	"dine24/internal/model"
)

// ReservationRepository defines data access for reservations. The
// collection is append-only: no update or delete exists.
type ReservationRepository interface {
	// Insert stores a reservation and returns it with the assigned
	// identifier and creation timestamp.
	Insert(ctx context.Context, res model.Reservation) (model.Reservation, error)

	// All retrieves every reservation in insertion order.
	All(ctx context.Context) ([]model.Reservation, error)

	// Count returns the number of stored reservations.
	Count(ctx context.Context) (int, error)
}

// MenuRepository defines data access for menu items.
type MenuRepository interface {
	// Insert stores a menu item and returns it with the assigned
	// identifier and creation timestamp.
	Insert(ctx context.Context, item model.MenuItem) (model.MenuItem, error)

	// All retrieves every menu item in insertion order.
	All(ctx context.Context) ([]model.MenuItem, error)

	// FindByName returns the first menu item with the given name, or
	// nil when none exists.
	FindByName(ctx context.Context, name string) (*model.MenuItem, error)

	// Count returns the number of stored menu items.
	Count(ctx context.Context) (int, error)
}

// ChatLogRepository defines append-only access to the chat log. No
// operation reads entries back; All exists for tests and offline
// inspection.
type ChatLogRepository interface {
	// Append stores one chat exchange.
	Append(ctx context.Context, entry model.ChatLogEntry) (model.ChatLogEntry, error)

	// All retrieves every log entry in insertion order.
	All(ctx context.Context) ([]model.ChatLogEntry, error)
}
