package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/day-planner/backend/internal/domain"
)

// ActivityRepo defines read access to the activity catalogue.
// The catalogue is seeded by migrations and read-only at runtime, so there
// are no write operations here.
type ActivityRepo interface {
	// ListByCity returns all catalogue activities for a city, ordered by title.
	ListByCity(ctx context.Context, cityID string) ([]domain.Activity, error)

	// GetByID retrieves a single activity by its identifier.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Activity, error)
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

// ListByCity returns the catalogue for one city ordered by title.
func (r *pgActivityRepo) ListByCity(ctx context.Context, cityID string) ([]domain.Activity, error) {
	const q = `
		SELECT id, city_id, title, type, duration_min, price_per_pax
		FROM activities
		WHERE city_id = @city_id
		ORDER BY title`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"city_id": cityID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByCity: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByCity: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByCity: rows: %w", err)
	}

	return activities, nil
}

// GetByID retrieves an activity by primary key.
func (r *pgActivityRepo) GetByID(ctx context.Context, id string) (domain.Activity, error) {
	const q = `
		SELECT id, city_id, title, type, duration_min, price_per_pax
		FROM activities
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a   domain.Activity
		typ string
	)
	if err := s.Scan(&a.ID, &a.CityID, &a.Title, &typ, &a.Duration, &a.PricePerPax); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}
	a.Type = domain.ActivityType(typ)
	return a, nil
}
