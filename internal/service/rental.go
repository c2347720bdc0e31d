package service

import (
	"context"
	"fmt"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/logger"
	"roomrent-backend/internal/repository"
	"roomrent-backend/internal/utils"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	roomRepo   repository.RoomRepository
	userRepo   repository.UserRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	roomRepo repository.RoomRepository,
	userRepo repository.UserRepository,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		roomRepo:   roomRepo,
		userRepo:   userRepo,
	}
}

func (s *rentalService) ListRentals(ctx context.Context, userID int32) ([]domain.RoomRental, error) {
	return s.rentalRepo.List(ctx, userID)
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.RoomRental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

// CreateRental opens a rental with no payments yet. The paid-until date is
// owned by the ledger and cannot be set here.
func (s *rentalService) CreateRental(ctx context.Context, r *domain.RoomRental) (*domain.RoomRental, error) {
	if r.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: rental start date is required", domain.ErrMalformedInput)
	}
	if _, err := s.roomRepo.GetByID(ctx, r.RoomID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, r.UserID); err != nil {
		return nil, err
	}

	r.StartDate = utils.TruncateToDate(r.StartDate)
	r.PaidUntil = nil
	if err := s.rentalRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Rental created", "rental_id", r.ID, "room_id", r.RoomID, "user_id", r.UserID)
	return r, nil
}
