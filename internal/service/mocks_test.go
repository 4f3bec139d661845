package service

import (
	"context"

	"dine24/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockReservationRepository is a mock implementation of repository.ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Insert(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	args := m.Called(ctx, res)
	return args.Get(0).(model.Reservation), args.Error(1)
}

func (m *MockReservationRepository) All(ctx context.Context) ([]model.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockMenuRepository is a mock implementation of repository.MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Insert(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) All(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockChatLogRepository is a mock implementation of repository.ChatLogRepository.
type MockChatLogRepository struct {
	mock.Mock
}

func (m *MockChatLogRepository) Append(ctx context.Context, entry model.ChatLogEntry) (model.ChatLogEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(model.ChatLogEntry), args.Error(1)
}

func (m *MockChatLogRepository) All(ctx context.Context) ([]model.ChatLogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatLogEntry), args.Error(1)
}
