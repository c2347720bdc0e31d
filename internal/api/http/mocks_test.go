package http

import (
	"context"

	"roomrent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordPayment(ctx context.Context, rentalID, managerID int32, monthsCount int) (*domain.TransactionView, error) {
	args := m.Called(ctx, rentalID, managerID, monthsCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionView), args.Error(1)
}
func (m *MockLedgerService) GetTransaction(ctx context.Context, id int32) (*domain.TransactionView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionView), args.Error(1)
}
func (m *MockLedgerService) ListTransactions(ctx context.Context, rentalID int32) ([]domain.TransactionView, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.TransactionView), args.Error(1)
}
func (m *MockLedgerService) DeleteTransaction(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockManagerService
type MockManagerService struct {
	mock.Mock
}

func (m *MockManagerService) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Manager), args.Error(1)
}
func (m *MockManagerService) GetManager(ctx context.Context, id int32) (*domain.Manager, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}
func (m *MockManagerService) CreateManager(ctx context.Context, manager *domain.Manager) (*domain.Manager, error) {
	args := m.Called(ctx, manager)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}
func (m *MockManagerService) UpdateManager(ctx context.Context, manager *domain.Manager) (*domain.Manager, error) {
	args := m.Called(ctx, manager)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}
func (m *MockManagerService) DeleteManager(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoomService
type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) ListRooms(ctx context.Context, locationID int32) ([]domain.Room, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomService) GetRoom(ctx context.Context, id int32) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomService) CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, room)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomService) UpdateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, room)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomService) DeleteRoom(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) ListRentals(ctx context.Context, userID int32) ([]domain.RoomRental, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.RoomRental), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, id int32) (*domain.RoomRental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomRental), args.Error(1)
}
func (m *MockRentalService) CreateRental(ctx context.Context, rental *domain.RoomRental) (*domain.RoomRental, error) {
	args := m.Called(ctx, rental)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomRental), args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }
