package service

import (
	"context"
	"fmt"
	"strings"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"
)

type userService struct {
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
}

func NewUserService(userRepo repository.UserRepository, locationRepo repository.LocationRepository) UserService {
	return &userService{userRepo: userRepo, locationRepo: locationRepo}
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := s.validate(ctx, u); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) UpdateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := s.validate(ctx, u); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int32) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) validate(ctx context.Context, u *domain.User) error {
	if strings.TrimSpace(u.FirstName) == "" || strings.TrimSpace(u.LastName) == "" {
		return fmt.Errorf("%w: user first and last name are required", domain.ErrMalformedInput)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: invalid email %q", domain.ErrMalformedInput, u.Email)
	}
	if u.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *u.LocationID); err != nil {
			return err
		}
	}
	return nil
}
