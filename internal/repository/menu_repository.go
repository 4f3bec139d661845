package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dine24/internal/model"
	"dine24/internal/store"

	"github.com/rs/zerolog"
)

// menuRepository implements MenuRepository over the in-memory store.
type menuRepository struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewMenuRepository creates a store-backed menu repository.
func NewMenuRepository(s *store.Store, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		store:  s,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// Insert stores a menu item and returns it with the assigned
// identifier and creation timestamp.
func (r *menuRepository) Insert(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	rec := store.Record{
		"name":          item.Name,
		"category":      item.Category,
		"price":         item.Price,
		"offer_price":   item.OfferPrice,
		"quantity":      item.Quantity,
		"rating":        item.Rating,
		"is_veg":        item.IsVeg,
		"orders_placed": item.OrdersPlaced,
	}

	id, createdAt, err := r.store.Insert(store.CollectionMenuItems, rec)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to insert menu item")
		return model.MenuItem{}, fmt.Errorf("failed to insert menu item: %w", err)
	}

	item.ID = id
	item.CreatedAt = createdAt

	r.logger.Info().Int64("menu_item_id", id).Str("name", item.Name).Msg("menu item added")
	return item, nil
}

// All retrieves every menu item in insertion order.
func (r *menuRepository) All(ctx context.Context) ([]model.MenuItem, error) {
	records, err := r.store.All(store.CollectionMenuItems)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	items := make([]model.MenuItem, 0, len(records))
	for _, rec := range records {
		items = append(items, recordToMenuItem(rec))
	}
	return items, nil
}

// FindByName returns the first menu item with the given name, or nil
// when none exists.
func (r *menuRepository) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	rec, err := r.store.FindOne(store.CollectionMenuItems, store.Record{"name": name})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("name", name).Msg("failed to find menu item")
		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}

	item := recordToMenuItem(rec)
	return &item, nil
}

// Count returns the number of stored menu items.
func (r *menuRepository) Count(ctx context.Context) (int, error) {
	count, err := r.store.Count(store.CollectionMenuItems)
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}

func recordToMenuItem(rec store.Record) model.MenuItem {
	var item model.MenuItem
	item.ID, _ = rec[store.FieldID].(int64)
	item.CreatedAt, _ = rec[store.FieldCreatedAt].(time.Time)
	item.Name, _ = rec["name"].(string)
	item.Category, _ = rec["category"].(string)
	item.Price, _ = rec["price"].(float64)
	item.OfferPrice, _ = rec["offer_price"].(*float64)
	item.Quantity, _ = rec["quantity"].(string)
	item.Rating, _ = rec["rating"].(float64)
	item.IsVeg, _ = rec["is_veg"].(bool)
	item.OrdersPlaced, _ = rec["orders_placed"].(int)
	return item
}
