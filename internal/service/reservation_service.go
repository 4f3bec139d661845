package service

import (
	"context"
	"fmt"

	"dine24/internal/model"
	"dine24/internal/repository"

	"github.com/rs/zerolog"
)

// reservationService implements ReservationService.
type reservationService struct {
	repo   repository.ReservationRepository
	logger zerolog.Logger
}

// NewReservationService creates a new reservation service.
func NewReservationService(repo repository.ReservationRepository, logger zerolog.Logger) ReservationService {
	return &reservationService{
		repo:   repo,
		logger: logger.With().Str("service", "reservation").Logger(),
	}
}

// Create validates the request and stores a confirmed reservation.
// Validation always precedes the insert: an invalid request never
// touches the store.
func (s *reservationService) Create(ctx context.Context, req *model.ReservationRequest) (model.Reservation, error) {
	if err := s.validate(req); err != nil {
		s.logger.Warn().Err(err).Msg("reservation rejected")
		return model.Reservation{}, err
	}

	purpose := req.Purpose
	if purpose == "" {
		purpose = model.DefaultReservationPurpose
	}

	orderItems := req.OrderItems
	if orderItems == nil {
		orderItems = []model.ReservationItem{}
	}

	res := model.Reservation{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		NumPeople:   int(req.NumPeople),
		ArrivalDate: req.ArrivalDate,
		ArrivalTime: req.ArrivalTime,
		Purpose:     purpose,
		TableNumber: req.TableNumber,
		Status:      model.ReservationStatusConfirmed,
		TotalAmount: float64(req.TotalAmount),
		OrderItems:  orderItems,
	}

	created, err := s.repo.Insert(ctx, res)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("failed to create reservation: %w", err)
	}
	return created, nil
}

// List retrieves all reservations in insertion order.
func (s *reservationService) List(ctx context.Context) ([]model.Reservation, error) {
	reservations, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// validate checks required fields in a fixed order and stops at the
// first failure.
func (s *reservationService) validate(req *model.ReservationRequest) error {
	checks := []struct {
		field string
		ok    bool
	}{
		{"full_name", req.FullName != ""},
		{"email", req.Email != ""},
		{"phone", req.Phone != ""},
		{"num_people", req.NumPeople != 0},
		{"arrival_date", req.ArrivalDate != ""},
		{"arrival_time", req.ArrivalTime != ""},
	}
	for _, c := range checks {
		if !c.ok {
			return model.NewMissingFieldError(c.field)
		}
	}

	// A party size of zero reads as an absent field above; negatives are
	// present but unusable.
	if req.NumPeople < 0 {
		return model.NewInvalidFieldError("num_people", "must be greater than zero")
	}
	if req.TotalAmount < 0 {
		return model.NewInvalidFieldError("total_amount", "cannot be negative")
	}

	return nil
}
