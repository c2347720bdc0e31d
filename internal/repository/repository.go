package repository

import (
	"context"
	"time"

	"roomrent-backend/internal/domain"
)

// Lookups return a *domain.NotFoundError when the record does not exist and a
// *domain.StoreError for every other failure.

type ManagerRepository interface {
	Create(ctx context.Context, manager *domain.Manager) error
	GetByID(ctx context.Context, id int32) (*domain.Manager, error)
	List(ctx context.Context) ([]domain.Manager, error)
	Update(ctx context.Context, manager *domain.Manager) error
	Delete(ctx context.Context, id int32) error
}

type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) error
	GetByID(ctx context.Context, id int32) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
	Update(ctx context.Context, location *domain.Location) error
	Delete(ctx context.Context, id int32) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int32) (*domain.Room, error)
	List(ctx context.Context, locationID int32) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int32) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int32) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.RoomRental) error
	GetByID(ctx context.Context, id int32) (*domain.RoomRental, error)
	// GetByIDForUpdate loads the rental and locks its row until the
	// surrounding unit of work ends. Outside a unit of work it behaves
	// like GetByID.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.RoomRental, error)
	List(ctx context.Context, userID int32) ([]domain.RoomRental, error)
	UpdatePaidUntil(ctx context.Context, id int32, paidUntil time.Time) error
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.OverdueRental, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetView(ctx context.Context, id int32) (*domain.TransactionView, error)
	ListViews(ctx context.Context, rentalID int32) ([]domain.TransactionView, error)
	Delete(ctx context.Context, id int32) error
}

// Repositories is the set of repositories bound to one unit of work.
type Repositories struct {
	Managers     ManagerRepository
	Locations    LocationRepository
	Rooms        RoomRepository
	Users        UserRepository
	Rentals      RentalRepository
	Transactions TransactionRepository
}

// Transactor runs fn inside a single atomic unit of work. Every write made
// through the repositories handed to fn commits together when fn returns nil
// and is rolled back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
