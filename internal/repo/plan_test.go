package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/day-planner/backend/internal/domain"
	"github.com/day-planner/backend/internal/repo"
)

func entryFixture(activityID, start, end string) domain.PlannedActivity {
	return domain.PlannedActivity{
		ID:         uuid.New(),
		ActivityID: activityID,
		StartTime:  start,
		EndTime:    end,
	}
}

func TestPlanRepo_GetOrCreate_NewPlan(t *testing.T) {
	r := repo.NewPlanRepo(newTestTx(t))
	ctx := context.Background()

	plan, err := r.GetOrCreate(ctx, "goa")

	require.NoError(t, err)
	assert.Equal(t, "goa", plan.CityID)
	assert.Equal(t, 1, plan.Pax, "new plans default to one participant")
	assert.Zero(t, plan.TotalPrice)
}

func TestPlanRepo_GetOrCreate_Idempotent(t *testing.T) {
	r := repo.NewPlanRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.GetOrCreate(ctx, "goa")
	require.NoError(t, err)
	require.NoError(t, r.SetPax(ctx, "goa", 4))

	plan, err := r.GetOrCreate(ctx, "goa")

	require.NoError(t, err)
	assert.Equal(t, 4, plan.Pax, "second GetOrCreate must not reset the plan")
}

func TestPlanRepo_AddEntry_And_ListEntries(t *testing.T) {
	r := repo.NewPlanRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.GetOrCreate(ctx, "goa")
	require.NoError(t, err)

	later := entryFixture("goa-spa", "14:00", "15:30")
	earlier := entryFixture("goa-scuba", "09:00", "12:00")

	_, err = r.AddEntry(ctx, "goa", later)
	require.NoError(t, err)
	_, err = r.AddEntry(ctx, "goa", earlier)
	require.NoError(t, err)

	entries, err := r.ListEntries(ctx, "goa")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, earlier.ID, entries[0].ID, "entries ordered by start time")
	assert.Equal(t, later.ID, entries[1].ID)
	assert.Equal(t, "09:00", entries[0].StartTime)
	assert.Equal(t, "12:00", entries[0].EndTime)
}

// Entries sharing a start time come back in insertion order.
func TestPlanRepo_ListEntries_StableOnEqualStart(t *testing.T) {
	r := repo.NewPlanRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.GetOrCreate(ctx, "goa")
	require.NoError(t, err)

	first := entryFixture("goa-scuba", "09:00", "12:00")
	second := entryFixture("goa-spa", "09:00", "10:30")

	_, err = r.AddEntry(ctx, "goa", first)
	require.NoError(t, err)
	_, err = r.AddEntry(ctx, "goa", second)
	require.NoError(t, err)

	entries, err := r.ListEntries(ctx, "goa")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
}

func TestPlanRepo_DeleteEntry(t *testing.T) {
	r := repo.NewPlanRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.GetOrCreate(ctx, "goa")
	require.NoError(t, err)

	entry := entryFixture("goa-scuba", "09:00", "12:00")
	_, err = r.AddEntry(ctx, "goa", entry)
	require.NoError(t, err)

	require.NoError(t, r.DeleteEntry(ctx, "goa", entry.ID))

	entries, err := r.ListEntries(ctx, "goa")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlanRepo_DeleteEntry_NotFound(t *testing.T) {
	r := repo.NewPlanRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.GetOrCreate(ctx, "goa")
	require.NoError(t, err)

	err = r.DeleteEntry(ctx, "goa", uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// An entry belonging to one city must not be deletable through another city's plan.
func TestPlanRepo_DeleteEntry_ScopedToCity(t *testing.T) {
	r := repo.NewPlanRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.GetOrCreate(ctx, "goa")
	require.NoError(t, err)
	_, err = r.GetOrCreate(ctx, "manali")
	require.NoError(t, err)

	entry := entryFixture("goa-scuba", "09:00", "12:00")
	_, err = r.AddEntry(ctx, "goa", entry)
	require.NoError(t, err)

	err = r.DeleteEntry(ctx, "manali", entry.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlanRepo_SetPax_And_SetTotalPrice(t *testing.T) {
	r := repo.NewPlanRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.GetOrCreate(ctx, "goa")
	require.NoError(t, err)

	require.NoError(t, r.SetPax(ctx, "goa", 3))
	require.NoError(t, r.SetTotalPrice(ctx, "goa", 10500))

	plan, err := r.GetOrCreate(ctx, "goa")
	require.NoError(t, err)
	assert.Equal(t, 3, plan.Pax)
	assert.Equal(t, 10500.0, plan.TotalPrice)
}

func TestPlanRepo_SetPax_NoPlanRow(t *testing.T) {
	r := repo.NewPlanRepo(newTestTx(t))

	err := r.SetPax(context.Background(), "jaipur", 2)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
