package service

import (
	"context"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"
)

type roomService struct {
	roomRepo     repository.RoomRepository
	locationRepo repository.LocationRepository
}

func NewRoomService(roomRepo repository.RoomRepository, locationRepo repository.LocationRepository) RoomService {
	return &roomService{roomRepo: roomRepo, locationRepo: locationRepo}
}

func (s *roomService) ListRooms(ctx context.Context, locationID int32) ([]domain.Room, error) {
	return s.roomRepo.List(ctx, locationID)
}

func (s *roomService) GetRoom(ctx context.Context, id int32) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

func (s *roomService) CreateRoom(ctx context.Context, r *domain.Room) (*domain.Room, error) {
	if err := s.validate(ctx, r); err != nil {
		return nil, err
	}
	if err := s.roomRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// UpdateRoom edits a room. A price change only affects payments recorded
// afterwards; existing transactions keep the amount they were charged.
func (s *roomService) UpdateRoom(ctx context.Context, r *domain.Room) (*domain.Room, error) {
	if err := s.validate(ctx, r); err != nil {
		return nil, err
	}
	if err := s.roomRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, id int32) error {
	return s.roomRepo.Delete(ctx, id)
}

func (s *roomService) validate(ctx context.Context, r *domain.Room) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if _, err := s.locationRepo.GetByID(ctx, r.LocationID); err != nil {
		return err
	}
	return nil
}
