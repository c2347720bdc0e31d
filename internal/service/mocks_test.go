package service

import (
	"context"
	"time"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockManagerRepo
type MockManagerRepo struct {
	mock.Mock
}

func (m *MockManagerRepo) Create(ctx context.Context, manager *domain.Manager) error {
	args := m.Called(ctx, manager)
	return args.Error(0)
}
func (m *MockManagerRepo) GetByID(ctx context.Context, id int32) (*domain.Manager, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}
func (m *MockManagerRepo) List(ctx context.Context) ([]domain.Manager, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Manager), args.Error(1)
}
func (m *MockManagerRepo) Update(ctx context.Context, manager *domain.Manager) error {
	args := m.Called(ctx, manager)
	return args.Error(0)
}
func (m *MockManagerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLocationRepo
type MockLocationRepo struct {
	mock.Mock
}

func (m *MockLocationRepo) Create(ctx context.Context, location *domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}
func (m *MockLocationRepo) GetByID(ctx context.Context, id int32) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}
func (m *MockLocationRepo) List(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}
func (m *MockLocationRepo) Update(ctx context.Context, location *domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}
func (m *MockLocationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) List(ctx context.Context, locationID int32) ([]domain.Room, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.RoomRental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.RoomRental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomRental), args.Error(1)
}
func (m *MockRentalRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.RoomRental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomRental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context, userID int32) ([]domain.RoomRental, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.RoomRental), args.Error(1)
}
func (m *MockRentalRepo) UpdatePaidUntil(ctx context.Context, id int32, paidUntil time.Time) error {
	args := m.Called(ctx, id, paidUntil)
	return args.Error(0)
}
func (m *MockRentalRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.OverdueRental, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.OverdueRental), args.Error(1)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) GetView(ctx context.Context, id int32) (*domain.TransactionView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionView), args.Error(1)
}
func (m *MockTransactionRepo) ListViews(ctx context.Context, rentalID int32) ([]domain.TransactionView, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.TransactionView), args.Error(1)
}
func (m *MockTransactionRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, tx *domain.TransactionView) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueReminder(ctx context.Context, rental *domain.OverdueRental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

// passthroughTransactor hands the same repositories to every unit of work and
// counts how each one ended.
type passthroughTransactor struct {
	repos     repository.Repositories
	commits   int
	rollbacks int
}

func (p *passthroughTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	if err := fn(ctx, p.repos); err != nil {
		p.rollbacks++
		return err
	}
	p.commits++
	return nil
}
