package repository

import (
	"context"
	"fmt"
	"time"

	"dine24/internal/model"
	"dine24/internal/store"

	"github.com/rs/zerolog"
)

// reservationRepository implements ReservationRepository over the
// in-memory store.
type reservationRepository struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewReservationRepository creates a store-backed reservation repository.
func NewReservationRepository(s *store.Store, logger zerolog.Logger) ReservationRepository {
	return &reservationRepository{
		store:  s,
		logger: logger.With().Str("repository", "reservation").Logger(),
	}
}

// Insert stores a reservation and returns it with the assigned
// identifier and creation timestamp.
func (r *reservationRepository) Insert(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	rec := store.Record{
		"full_name":    res.FullName,
		"email":        res.Email,
		"phone":        res.Phone,
		"num_people":   res.NumPeople,
		"arrival_date": res.ArrivalDate,
		"arrival_time": res.ArrivalTime,
		"purpose":      res.Purpose,
		"table_number": res.TableNumber,
		"status":       res.Status,
		"total_amount": res.TotalAmount,
		"order_items":  res.OrderItems,
	}

	id, createdAt, err := r.store.Insert(store.CollectionReservations, rec)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to insert reservation")
		return model.Reservation{}, fmt.Errorf("failed to insert reservation: %w", err)
	}

	res.ID = id
	res.CreatedAt = createdAt

	r.logger.Info().Int64("reservation_id", id).Str("full_name", res.FullName).Msg("reservation created")
	return res, nil
}

// All retrieves every reservation in insertion order.
func (r *reservationRepository) All(ctx context.Context) ([]model.Reservation, error) {
	records, err := r.store.All(store.CollectionReservations)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list reservations")
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	reservations := make([]model.Reservation, 0, len(records))
	for _, rec := range records {
		reservations = append(reservations, recordToReservation(rec))
	}
	return reservations, nil
}

// Count returns the number of stored reservations.
func (r *reservationRepository) Count(ctx context.Context) (int, error) {
	count, err := r.store.Count(store.CollectionReservations)
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}
	return count, nil
}

func recordToReservation(rec store.Record) model.Reservation {
	var res model.Reservation
	res.ID, _ = rec[store.FieldID].(int64)
	res.CreatedAt, _ = rec[store.FieldCreatedAt].(time.Time)
	res.FullName, _ = rec["full_name"].(string)
	res.Email, _ = rec["email"].(string)
	res.Phone, _ = rec["phone"].(string)
	res.NumPeople, _ = rec["num_people"].(int)
	res.ArrivalDate, _ = rec["arrival_date"].(string)
	res.ArrivalTime, _ = rec["arrival_time"].(string)
	res.Purpose, _ = rec["purpose"].(string)
	res.TableNumber, _ = rec["table_number"].(*int)
	res.Status, _ = rec["status"].(string)
	res.TotalAmount, _ = rec["total_amount"].(float64)
	res.OrderItems, _ = rec["order_items"].([]model.ReservationItem)
	return res
}
