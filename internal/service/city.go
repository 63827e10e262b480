package service

import (
	"context"
	"fmt"

	"github.com/day-planner/backend/internal/domain"
	"github.com/day-planner/backend/internal/repo"
)

// CityService implements business logic for City operations.
type CityService struct {
	cities repo.CityRepo
}

// NewCityService constructs a CityService backed by the provided CityRepo.
func NewCityService(cities repo.CityRepo) *CityService {
	return &CityService{cities: cities}
}

// List returns all destinations.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CityService) List(ctx context.Context) ([]domain.City, error) {
	cities, err := s.cities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CityService.List: %w", err)
	}
	if cities == nil {
		return []domain.City{}, nil
	}
	return cities, nil
}
