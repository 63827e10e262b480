package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/day-planner/backend/internal/domain"
)

// PlanRepo defines the persistence operations for day plans and their entries.
//
// The plan row (pax, total_price) and the entry rows are stored separately;
// GetOrCreate returns the plan without entries and ListEntries returns the
// ordered entry set, because the service layer usually needs them at
// different points of the validate-and-mutate sequence.
type PlanRepo interface {
	// GetOrCreate returns the day plan row for a city, inserting an empty
	// plan (pax=1, total 0) on first access. The returned plan has a nil
	// Activities slice — use ListEntries for the entry set.
	GetOrCreate(ctx context.Context, cityID string) (domain.DayPlan, error)

	// ListEntries returns all planned entries for a city ordered by start
	// time ascending, insertion order among equal start times.
	ListEntries(ctx context.Context, cityID string) ([]domain.PlannedActivity, error)

	// AddEntry inserts a planned entry into the city's plan.
	AddEntry(ctx context.Context, cityID string, entry domain.PlannedActivity) (domain.PlannedActivity, error)

	// DeleteEntry removes a planned entry by ID, scoped to the given city.
	// Returns domain.ErrNotFound if no entry with that ID exists under that city.
	DeleteEntry(ctx context.Context, cityID string, entryID uuid.UUID) error

	// SetPax updates the participant count on the plan row.
	// Returns domain.ErrNotFound if the plan row does not exist.
	SetPax(ctx context.Context, cityID string, pax int) error

	// SetTotalPrice stores the recomputed total on the plan row.
	// Returns domain.ErrNotFound if the plan row does not exist.
	SetTotalPrice(ctx context.Context, cityID string, total float64) error
}

// pgPlanRepo is the Postgres implementation of PlanRepo.
type pgPlanRepo struct {
	db db
}

// NewPlanRepo constructs a PlanRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPlanRepo(db db) PlanRepo {
	return &pgPlanRepo{db: db}
}

// GetOrCreate inserts an empty plan row if the city has none, then returns it.
func (r *pgPlanRepo) GetOrCreate(ctx context.Context, cityID string) (domain.DayPlan, error) {
	const insert = `
		INSERT INTO day_plans (city_id)
		VALUES (@city_id)
		ON CONFLICT (city_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, insert, pgx.NamedArgs{"city_id": cityID}); err != nil {
		return domain.DayPlan{}, fmt.Errorf("repo.PlanRepo.GetOrCreate: insert: %w", err)
	}

	const q = `
		SELECT city_id, pax, total_price
		FROM day_plans
		WHERE city_id = @city_id`

	var p domain.DayPlan
	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"city_id": cityID})
	if err := row.Scan(&p.CityID, &p.Pax, &p.TotalPrice); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DayPlan{}, fmt.Errorf("repo.PlanRepo.GetOrCreate: %w", domain.ErrNotFound)
		}
		return domain.DayPlan{}, fmt.Errorf("repo.PlanRepo.GetOrCreate: %w", err)
	}
	return p, nil
}

// ListEntries returns the plan's entries ordered by start time, with the
// position column breaking ties in insertion order.
func (r *pgPlanRepo) ListEntries(ctx context.Context, cityID string) ([]domain.PlannedActivity, error) {
	const q = `
		SELECT id, activity_id, start_time, end_time
		FROM plan_activities
		WHERE city_id = @city_id
		ORDER BY start_time, position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"city_id": cityID})
	if err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.ListEntries: %w", err)
	}
	defer rows.Close()

	var entries []domain.PlannedActivity
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PlanRepo.ListEntries: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.ListEntries: rows: %w", err)
	}

	return entries, nil
}

// AddEntry inserts one planned entry row with the caller-generated ID.
func (r *pgPlanRepo) AddEntry(ctx context.Context, cityID string, entry domain.PlannedActivity) (domain.PlannedActivity, error) {
	const q = `
		INSERT INTO plan_activities (id, city_id, activity_id, start_time, end_time)
		VALUES (@id, @city_id, @activity_id, @start_time, @end_time)
		RETURNING id, activity_id, start_time, end_time`

	args := pgx.NamedArgs{
		"id":          entry.ID,
		"city_id":     cityID,
		"activity_id": entry.ActivityID,
		"start_time":  entry.StartTime,
		"end_time":    entry.EndTime,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanEntry(row)
	if err != nil {
		return domain.PlannedActivity{}, fmt.Errorf("repo.PlanRepo.AddEntry: %w", err)
	}
	return result, nil
}

// DeleteEntry removes a planned entry by primary key, scoped to its city.
func (r *pgPlanRepo) DeleteEntry(ctx context.Context, cityID string, entryID uuid.UUID) error {
	const q = `
		DELETE FROM plan_activities
		WHERE id = @id AND city_id = @city_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": entryID, "city_id": cityID})
	if err != nil {
		return fmt.Errorf("repo.PlanRepo.DeleteEntry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PlanRepo.DeleteEntry: %w", domain.ErrNotFound)
	}
	return nil
}

// SetPax updates the participant count.
func (r *pgPlanRepo) SetPax(ctx context.Context, cityID string, pax int) error {
	const q = `
		UPDATE day_plans
		SET pax = @pax
		WHERE city_id = @city_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"city_id": cityID, "pax": pax})
	if err != nil {
		return fmt.Errorf("repo.PlanRepo.SetPax: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PlanRepo.SetPax: %w", domain.ErrNotFound)
	}
	return nil
}

// SetTotalPrice stores the recomputed plan total.
func (r *pgPlanRepo) SetTotalPrice(ctx context.Context, cityID string, total float64) error {
	const q = `
		UPDATE day_plans
		SET total_price = @total_price
		WHERE city_id = @city_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"city_id": cityID, "total_price": total})
	if err != nil {
		return fmt.Errorf("repo.PlanRepo.SetTotalPrice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PlanRepo.SetTotalPrice: %w", domain.ErrNotFound)
	}
	return nil
}

// scanEntry maps a single database row into a domain.PlannedActivity.
// It handles the UUID conversion.
func scanEntry(s scanner) (domain.PlannedActivity, error) {
	var (
		e  domain.PlannedActivity
		id pgtype.UUID
	)
	if err := s.Scan(&id, &e.ActivityID, &e.StartTime, &e.EndTime); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PlannedActivity{}, domain.ErrNotFound
		}
		return domain.PlannedActivity{}, err
	}
	e.ID = uuid.UUID(id.Bytes)
	return e, nil
}
