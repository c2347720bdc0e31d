package service

import (
	"context"
	"fmt"
	"strings"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"
)

type managerService struct {
	managerRepo  repository.ManagerRepository
	locationRepo repository.LocationRepository
}

func NewManagerService(managerRepo repository.ManagerRepository, locationRepo repository.LocationRepository) ManagerService {
	return &managerService{managerRepo: managerRepo, locationRepo: locationRepo}
}

func (s *managerService) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	return s.managerRepo.List(ctx)
}

func (s *managerService) GetManager(ctx context.Context, id int32) (*domain.Manager, error) {
	return s.managerRepo.GetByID(ctx, id)
}

func (s *managerService) CreateManager(ctx context.Context, m *domain.Manager) (*domain.Manager, error) {
	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}
	if err := s.managerRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	// Reload to pick up the joined location name.
	return s.managerRepo.GetByID(ctx, m.ID)
}

func (s *managerService) UpdateManager(ctx context.Context, m *domain.Manager) (*domain.Manager, error) {
	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}
	if err := s.managerRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return s.managerRepo.GetByID(ctx, m.ID)
}

func (s *managerService) DeleteManager(ctx context.Context, id int32) error {
	return s.managerRepo.Delete(ctx, id)
}

func (s *managerService) validate(ctx context.Context, m *domain.Manager) error {
	if strings.TrimSpace(m.FirstName) == "" || strings.TrimSpace(m.LastName) == "" {
		return fmt.Errorf("%w: manager first and last name are required", domain.ErrMalformedInput)
	}
	if !strings.Contains(m.Email, "@") {
		return fmt.Errorf("%w: invalid email %q", domain.ErrMalformedInput, m.Email)
	}
	if m.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *m.LocationID); err != nil {
			return err
		}
	}
	return nil
}
