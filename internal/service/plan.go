// Package service contains the business logic for the Day Planner API.
// Services validate inputs, run the scheduling engine, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/day-planner/backend/internal/domain"
	"github.com/day-planner/backend/internal/planner"
	"github.com/day-planner/backend/internal/repo"
)

// PlanService implements the day-plan mutation sequence: every mutation runs
// the planner validators against a snapshot of the catalogue and the current
// plan, and only a fully valid mutation is persisted. The total price is
// recomputed after each successful mutation.
type PlanService struct {
	cities     repo.CityRepo
	activities repo.ActivityRepo
	plans      repo.PlanRepo
}

// NewPlanService constructs a PlanService backed by the provided repos.
func NewPlanService(cities repo.CityRepo, activities repo.ActivityRepo, plans repo.PlanRepo) *PlanService {
	return &PlanService{cities: cities, activities: activities, plans: plans}
}

// Get returns the city's day plan, lazily creating an empty plan (pax=1) on
// first access. Returns domain.ErrNotFound if the city does not exist.
func (s *PlanService) Get(ctx context.Context, cityID string) (domain.DayPlan, error) {
	if _, err := s.cities.GetByID(ctx, cityID); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.Get: %w", err)
	}
	return s.assemble(ctx, cityID)
}

// AddActivity schedules one occurrence of a catalogue activity at startTime.
//
// The validators run in a fixed order — time window, overlap, transfer rule —
// and the first failure aborts the whole operation with no mutation. On
// success the new entry gets a fresh ID, the plan is re-sorted by start time,
// and the total price is recomputed.
//
// Returns domain.ErrNotFound if the city or activity does not resolve, and
// domain.ErrValidation (with a rule-identifying message) on any validator
// rejection or malformed start time.
func (s *PlanService) AddActivity(ctx context.Context, cityID, activityID, startTime string) (domain.DayPlan, error) {
	if _, err := s.cities.GetByID(ctx, cityID); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.AddActivity: city: %w", err)
	}

	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.AddActivity: activity: %w", err)
	}
	if activity.CityID != cityID {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.AddActivity: activity: %w", domain.ErrNotFound)
	}

	plan, err := s.plans.GetOrCreate(ctx, cityID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.AddActivity: %w", err)
	}
	entries, err := s.plans.ListEntries(ctx, cityID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.AddActivity: %w", err)
	}

	endTime, err := planner.CalculateEndTime(startTime, activity.Duration)
	if err != nil {
		return domain.DayPlan{}, err
	}

	if res, err := planner.ValidateTimeWindow(startTime, endTime); err != nil {
		return domain.DayPlan{}, err
	} else if !res.Valid {
		return domain.DayPlan{}, fmt.Errorf("%w: %s", domain.ErrValidation, res.Message)
	}

	if res, err := planner.ValidateNoOverlap(entries, startTime, endTime); err != nil {
		return domain.DayPlan{}, err
	} else if !res.Valid {
		return domain.DayPlan{}, fmt.Errorf("%w: %s", domain.ErrValidation, res.Message)
	}

	catalogue, err := s.catalogue(ctx, cityID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.AddActivity: %w", err)
	}
	if res := planner.ValidateTransferRule(catalogue, entries, activityID); !res.Valid {
		return domain.DayPlan{}, fmt.Errorf("%w: %s", domain.ErrValidation, res.Message)
	}

	entry := domain.PlannedActivity{
		ID:         uuid.New(),
		ActivityID: activityID,
		StartTime:  startTime,
		EndTime:    endTime,
	}
	if _, err := s.plans.AddEntry(ctx, cityID, entry); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.AddActivity: %w", err)
	}

	if err := s.reprice(ctx, cityID, catalogue, plan.Pax); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.AddActivity: %w", err)
	}
	return s.assemble(ctx, cityID)
}

// RemoveActivity drops a planned entry by ID and recomputes the total price.
// Returns domain.ErrNotFound if the city has no entry with that ID.
func (s *PlanService) RemoveActivity(ctx context.Context, cityID string, entryID uuid.UUID) (domain.DayPlan, error) {
	if _, err := s.cities.GetByID(ctx, cityID); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.RemoveActivity: city: %w", err)
	}

	plan, err := s.plans.GetOrCreate(ctx, cityID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.RemoveActivity: %w", err)
	}

	if err := s.plans.DeleteEntry(ctx, cityID, entryID); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.RemoveActivity: %w", err)
	}

	catalogue, err := s.catalogue(ctx, cityID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.RemoveActivity: %w", err)
	}
	if err := s.reprice(ctx, cityID, catalogue, plan.Pax); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.RemoveActivity: %w", err)
	}
	return s.assemble(ctx, cityID)
}

// SetPax updates the participant count and recomputes the total price over
// the unchanged entry set. Returns domain.ErrValidation for pax < 1.
func (s *PlanService) SetPax(ctx context.Context, cityID string, pax int) (domain.DayPlan, error) {
	if pax < 1 {
		return domain.DayPlan{}, fmt.Errorf("%w: pax must be at least 1", domain.ErrValidation)
	}

	if _, err := s.cities.GetByID(ctx, cityID); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.SetPax: city: %w", err)
	}

	if _, err := s.plans.GetOrCreate(ctx, cityID); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.SetPax: %w", err)
	}
	if err := s.plans.SetPax(ctx, cityID, pax); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.SetPax: %w", err)
	}

	catalogue, err := s.catalogue(ctx, cityID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.SetPax: %w", err)
	}
	if err := s.reprice(ctx, cityID, catalogue, pax); err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService.SetPax: %w", err)
	}
	return s.assemble(ctx, cityID)
}

// catalogue loads the city's activities into a planner lookup map.
func (s *PlanService) catalogue(ctx context.Context, cityID string) (planner.Catalogue, error) {
	activities, err := s.activities.ListByCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	return planner.NewCatalogue(activities), nil
}

// reprice recomputes and stores the plan total from the current entry set.
func (s *PlanService) reprice(ctx context.Context, cityID string, catalogue planner.Catalogue, pax int) error {
	entries, err := s.plans.ListEntries(ctx, cityID)
	if err != nil {
		return err
	}
	return s.plans.SetTotalPrice(ctx, cityID, planner.TotalPrice(catalogue, entries, pax))
}

// assemble builds the full DayPlan view: plan row plus ordered entries.
// The repo already orders entries by start time; the stable re-sort is kept
// as the engine-side guarantee in case a storage backend returns them raw.
func (s *PlanService) assemble(ctx context.Context, cityID string) (domain.DayPlan, error) {
	plan, err := s.plans.GetOrCreate(ctx, cityID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService: assemble: %w", err)
	}
	entries, err := s.plans.ListEntries(ctx, cityID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlanService: assemble: %w", err)
	}
	if entries == nil {
		entries = []domain.PlannedActivity{}
	}
	planner.SortByStartTime(entries)
	plan.Activities = entries
	return plan, nil
}
