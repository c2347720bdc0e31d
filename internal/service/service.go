package service

import (
	"context"

	"roomrent-backend/internal/domain"
)

// LedgerService records rental payments and exposes the transaction history.
type LedgerService interface {
	RecordPayment(ctx context.Context, rentalID, managerID int32, monthsCount int) (*domain.TransactionView, error)
	GetTransaction(ctx context.Context, id int32) (*domain.TransactionView, error)
	ListTransactions(ctx context.Context, rentalID int32) ([]domain.TransactionView, error)
	DeleteTransaction(ctx context.Context, id int32) error
}

type ManagerService interface {
	ListManagers(ctx context.Context) ([]domain.Manager, error)
	GetManager(ctx context.Context, id int32) (*domain.Manager, error)
	CreateManager(ctx context.Context, m *domain.Manager) (*domain.Manager, error)
	UpdateManager(ctx context.Context, m *domain.Manager) (*domain.Manager, error)
	DeleteManager(ctx context.Context, id int32) error
}

type LocationService interface {
	ListLocations(ctx context.Context) ([]domain.Location, error)
	GetLocation(ctx context.Context, id int32) (*domain.Location, error)
	CreateLocation(ctx context.Context, l *domain.Location) (*domain.Location, error)
	UpdateLocation(ctx context.Context, l *domain.Location) (*domain.Location, error)
	DeleteLocation(ctx context.Context, id int32) error
}

type RoomService interface {
	ListRooms(ctx context.Context, locationID int32) ([]domain.Room, error)
	GetRoom(ctx context.Context, id int32) (*domain.Room, error)
	CreateRoom(ctx context.Context, r *domain.Room) (*domain.Room, error)
	UpdateRoom(ctx context.Context, r *domain.Room) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id int32) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	CreateUser(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id int32) error
}

type RentalService interface {
	ListRentals(ctx context.Context, userID int32) ([]domain.RoomRental, error)
	GetRental(ctx context.Context, id int32) (*domain.RoomRental, error)
	CreateRental(ctx context.Context, r *domain.RoomRental) (*domain.RoomRental, error)
}

type EmailService interface {
	SendPaymentReceipt(ctx context.Context, tx *domain.TransactionView) error
	SendOverdueReminder(ctx context.Context, rental *domain.OverdueRental) error
}
