package service

import (
	"context"
	"fmt"

	"dine24/internal/model"
	"dine24/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	repo   repository.MenuRepository
	logger zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		repo:   repo,
		logger: logger.With().Str("service", "menu").Logger(),
	}
}

// Add validates the request and stores a new menu item. New items start
// vegetarian unless stated otherwise and with zero orders placed.
func (s *menuService) Add(ctx context.Context, req *model.MenuItemRequest) (model.MenuItem, error) {
	if err := s.validate(req); err != nil {
		s.logger.Warn().Err(err).Msg("menu item rejected")
		return model.MenuItem{}, err
	}

	isVeg := true
	if req.IsVeg != nil {
		isVeg = *req.IsVeg
	}

	item := model.MenuItem{
		Name:         req.Name,
		Category:     req.Category,
		Price:        float64(req.Price),
		OfferPrice:   req.OfferPrice,
		Quantity:     string(req.Quantity),
		Rating:       req.Rating,
		IsVeg:        isVeg,
		OrdersPlaced: 0,
	}

	created, err := s.repo.Insert(ctx, item)
	if err != nil {
		return model.MenuItem{}, fmt.Errorf("failed to add menu item: %w", err)
	}
	return created, nil
}

// List retrieves all menu items in insertion order.
func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// SeedSampleItems inserts the demo menu if those dishes are not already
// present. Safe to call on every startup.
func (s *menuService) SeedSampleItems(ctx context.Context) error {
	samples := []model.MenuItem{
		{
			Name:         "Butter Chicken",
			Category:     "Main Course",
			Price:        450,
			Quantity:     "1 plate",
			Rating:       4.5,
			IsVeg:        false,
			OrdersPlaced: 0,
		},
		{
			Name:         "Paneer Tikka",
			Category:     "Appetizers",
			Price:        320,
			Quantity:     "6 pieces",
			Rating:       4.3,
			IsVeg:        true,
			OrdersPlaced: 0,
		},
	}

	for _, sample := range samples {
		existing, err := s.repo.FindByName(ctx, sample.Name)
		if err != nil {
			return fmt.Errorf("failed to seed sample menu: %w", err)
		}
		if existing != nil {
			continue
		}
		if _, err := s.repo.Insert(ctx, sample); err != nil {
			return fmt.Errorf("failed to seed sample menu: %w", err)
		}
	}

	s.logger.Info().Int("samples", len(samples)).Msg("sample menu seeded")
	return nil
}

// validate checks required fields in a fixed order and stops at the
// first failure.
func (s *menuService) validate(req *model.MenuItemRequest) error {
	checks := []struct {
		field string
		ok    bool
	}{
		{"name", req.Name != ""},
		{"category", req.Category != ""},
		{"price", req.Price != 0},
		{"quantity", req.Quantity != ""},
	}
	for _, c := range checks {
		if !c.ok {
			return model.NewMissingFieldError(c.field)
		}
	}

	if req.Price < 0 {
		return model.NewInvalidFieldError("price", "must be greater than zero")
	}
	if req.OfferPrice != nil && *req.OfferPrice < 0 {
		return model.NewInvalidFieldError("offer_price", "cannot be negative")
	}
	if req.Rating < 0 || req.Rating > 5 {
		return model.NewInvalidFieldError("rating", "must be between 0 and 5")
	}

	return nil
}
