package service

import (
	"context"
	"fmt"
	"strings"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"
)

type locationService struct {
	locationRepo repository.LocationRepository
}

func NewLocationService(locationRepo repository.LocationRepository) LocationService {
	return &locationService{locationRepo: locationRepo}
}

func (s *locationService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.locationRepo.List(ctx)
}

func (s *locationService) GetLocation(ctx context.Context, id int32) (*domain.Location, error) {
	return s.locationRepo.GetByID(ctx, id)
}

func (s *locationService) CreateLocation(ctx context.Context, l *domain.Location) (*domain.Location, error) {
	if strings.TrimSpace(l.Name) == "" {
		return nil, fmt.Errorf("%w: location name is required", domain.ErrMalformedInput)
	}
	if err := s.locationRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, l *domain.Location) (*domain.Location, error) {
	if strings.TrimSpace(l.Name) == "" {
		return nil, fmt.Errorf("%w: location name is required", domain.ErrMalformedInput)
	}
	if err := s.locationRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *locationService) DeleteLocation(ctx context.Context, id int32) error {
	return s.locationRepo.Delete(ctx, id)
}
