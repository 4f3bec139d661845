package service

import (
	"context"
	"fmt"

	"dine24/internal/config"
	"dine24/internal/model"
	"dine24/internal/repository"

	"github.com/rs/zerolog"
)

// analyticsService implements AnalyticsService.
type analyticsService struct {
	reservationRepo repository.ReservationRepository
	menuRepo        repository.MenuRepository
	display         config.AnalyticsConfig
	logger          zerolog.Logger
}

// NewAnalyticsService creates a new analytics service. display holds
// the illustrative dashboard values that are not derived from stored
// data.
func NewAnalyticsService(
	reservationRepo repository.ReservationRepository,
	menuRepo repository.MenuRepository,
	display config.AnalyticsConfig,
	logger zerolog.Logger,
) AnalyticsService {
	return &analyticsService{
		reservationRepo: reservationRepo,
		menuRepo:        menuRepo,
		display:         display,
		logger:          logger.With().Str("service", "analytics").Logger(),
	}
}

// Summary aggregates reservation and menu counts plus total revenue.
func (s *analyticsService) Summary(ctx context.Context) (model.Analytics, error) {
	reservations, err := s.reservationRepo.All(ctx)
	if err != nil {
		return model.Analytics{}, fmt.Errorf("failed to aggregate reservations: %w", err)
	}

	menuCount, err := s.menuRepo.Count(ctx)
	if err != nil {
		return model.Analytics{}, fmt.Errorf("failed to count menu items: %w", err)
	}

	var revenue float64
	for _, res := range reservations {
		revenue += res.TotalAmount
	}

	return model.Analytics{
		TotalReservations:    len(reservations),
		TotalMenuItems:       menuCount,
		TotalRevenue:         revenue,
		PopularDishes:        s.display.PopularDishes,
		PeakHours:            s.display.PeakHours,
		CustomerSatisfaction: s.display.CustomerSatisfaction,
	}, nil
}
