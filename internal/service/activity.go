package service

import (
	"context"
	"fmt"

	"github.com/day-planner/backend/internal/domain"
	"github.com/day-planner/backend/internal/repo"
)

// ActivityService implements business logic for catalogue reads.
// It holds the city repo as well because listing a city's activities first
// verifies the city exists.
type ActivityService struct {
	cities     repo.CityRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(cities repo.CityRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{cities: cities, activities: activities}
}

// ListByCity returns the activity catalogue for one city, ordered by title.
// Returns domain.ErrNotFound if the city does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByCity(ctx context.Context, cityID string) ([]domain.Activity, error) {
	if _, err := s.cities.GetByID(ctx, cityID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByCity: %w", err)
	}
	activities, err := s.activities.ListByCity(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByCity: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}
