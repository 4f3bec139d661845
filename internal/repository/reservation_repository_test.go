package repository

import (
	"context"
	"testing"

	"dine24/internal/model"
	"dine24/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReservation() model.Reservation {
	return model.Reservation{
		FullName:    "Asha Rao",
		Email:       "asha@example.com",
		Phone:       "9876543210",
		NumPeople:   4,
		ArrivalDate: "2024-06-01",
		ArrivalTime: "19:30",
		Purpose:     "dining",
		Status:      model.ReservationStatusConfirmed,
		TotalAmount: 1200,
		OrderItems: []model.ReservationItem{
			{Name: "Biryani", Price: 400, Quantity: 3},
		},
	}
}

func TestReservationRepository_Insert(t *testing.T) {
	repo := NewReservationRepository(store.NewDefault(zerolog.Nop()), zerolog.Nop())
	ctx := context.Background()

	created, err := repo.Insert(ctx, testReservation())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	second, err := repo.Insert(ctx, testReservation())
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestReservationRepository_All_RoundTrips(t *testing.T) {
	repo := NewReservationRepository(store.NewDefault(zerolog.Nop()), zerolog.Nop())
	ctx := context.Background()

	table := 7
	res := testReservation()
	res.TableNumber = &table

	created, err := repo.Insert(ctx, res)
	require.NoError(t, err)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])
	require.NotNil(t, all[0].TableNumber)
	assert.Equal(t, 7, *all[0].TableNumber)
	assert.Equal(t, []model.ReservationItem{{Name: "Biryani", Price: 400, Quantity: 3}}, all[0].OrderItems)
}

func TestReservationRepository_Count(t *testing.T) {
	repo := NewReservationRepository(store.NewDefault(zerolog.Nop()), zerolog.Nop())
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	for i := 0; i < 3; i++ {
		_, err := repo.Insert(ctx, testReservation())
		require.NoError(t, err)
	}

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
