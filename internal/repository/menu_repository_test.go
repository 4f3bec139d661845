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

func testMenuItem(name string) model.MenuItem {
	return model.MenuItem{
		Name:     name,
		Category: "Main Course",
		Price:    450,
		Quantity: "1 plate",
		Rating:   4.5,
		IsVeg:    false,
	}
}

func TestMenuRepository_Insert(t *testing.T) {
	repo := NewMenuRepository(store.NewDefault(zerolog.Nop()), zerolog.Nop())
	ctx := context.Background()

	created, err := repo.Insert(ctx, testMenuItem("Butter Chicken"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Zero(t, created.OrdersPlaced)
}

func TestMenuRepository_All_RoundTrips(t *testing.T) {
	repo := NewMenuRepository(store.NewDefault(zerolog.Nop()), zerolog.Nop())
	ctx := context.Background()

	offer := 399.0
	item := testMenuItem("Paneer Tikka")
	item.OfferPrice = &offer
	item.IsVeg = true

	created, err := repo.Insert(ctx, item)
	require.NoError(t, err)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])
	require.NotNil(t, all[0].OfferPrice)
	assert.Equal(t, 399.0, *all[0].OfferPrice)
	assert.True(t, all[0].IsVeg)
}

func TestMenuRepository_All_PreservesInsertionOrder(t *testing.T) {
	repo := NewMenuRepository(store.NewDefault(zerolog.Nop()), zerolog.Nop())
	ctx := context.Background()

	names := []string{"Biryani", "Dal Tadka", "Gulab Jamun"}
	for _, name := range names {
		_, err := repo.Insert(ctx, testMenuItem(name))
		require.NoError(t, err)
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, name := range names {
		assert.Equal(t, name, all[i].Name)
		assert.Equal(t, int64(i+1), all[i].ID)
	}
}

func TestMenuRepository_FindByName(t *testing.T) {
	repo := NewMenuRepository(store.NewDefault(zerolog.Nop()), zerolog.Nop())
	ctx := context.Background()

	_, err := repo.Insert(ctx, testMenuItem("Butter Chicken"))
	require.NoError(t, err)

	found, err := repo.FindByName(ctx, "Butter Chicken")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(1), found.ID)

	missing, err := repo.FindByName(ctx, "Ramen")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestChatLogRepository_Append(t *testing.T) {
	repo := NewChatLogRepository(store.NewDefault(zerolog.Nop()), zerolog.Nop())
	ctx := context.Background()

	entry, err := repo.Append(ctx, model.ChatLogEntry{
		UserMessage: "show me the menu",
		BotResponse: "Our popular dishes...",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entry, all[0])
}
