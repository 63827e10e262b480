package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/day-planner/backend/internal/domain"
	"github.com/day-planner/backend/internal/handler"
)

// mockPlanServicer is a test double for handler.PlanServicer.
// Set only the method fields your test needs.
type mockPlanServicer struct {
	get            func(ctx context.Context, cityID string) (domain.DayPlan, error)
	addActivity    func(ctx context.Context, cityID, activityID, startTime string) (domain.DayPlan, error)
	removeActivity func(ctx context.Context, cityID string, entryID uuid.UUID) (domain.DayPlan, error)
	setPax         func(ctx context.Context, cityID string, pax int) (domain.DayPlan, error)
}

func (m *mockPlanServicer) Get(ctx context.Context, cityID string) (domain.DayPlan, error) {
	return m.get(ctx, cityID)
}
func (m *mockPlanServicer) AddActivity(ctx context.Context, cityID, activityID, startTime string) (domain.DayPlan, error) {
	return m.addActivity(ctx, cityID, activityID, startTime)
}
func (m *mockPlanServicer) RemoveActivity(ctx context.Context, cityID string, entryID uuid.UUID) (domain.DayPlan, error) {
	return m.removeActivity(ctx, cityID, entryID)
}
func (m *mockPlanServicer) SetPax(ctx context.Context, cityID string, pax int) (domain.DayPlan, error) {
	return m.setPax(ctx, cityID, pax)
}

// compile-time check: mockPlanServicer must satisfy handler.PlanServicer.
var _ handler.PlanServicer = (*mockPlanServicer)(nil)

// newPlanHTTPHandler wires a Server with the given plan mock only.
func newPlanHTTPHandler(svc handler.PlanServicer) http.Handler {
	return handler.NewServer(nil, nil, svc).Routes()
}

// jsonBody marshals v into a request body reader.
func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func planFixture() domain.DayPlan {
	return domain.DayPlan{
		CityID: "goa",
		Pax:    1,
		Activities: []domain.PlannedActivity{
			{ID: uuid.New(), ActivityID: "goa-scuba", StartTime: "09:00", EndTime: "12:00"},
		},
		TotalPrice: 3500,
	}
}

// ---- GET /api/cities/{cityID}/plan ----------------------------------------

func TestGetPlan_200(t *testing.T) {
	fixture := planFixture()
	h := newPlanHTTPHandler(&mockPlanServicer{
		get: func(_ context.Context, cityID string) (domain.DayPlan, error) {
			assert.Equal(t, "goa", cityID)
			return fixture, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cities/goa/plan", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.DayPlan
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, fixture, got)
}

func TestGetPlan_404(t *testing.T) {
	h := newPlanHTTPHandler(&mockPlanServicer{
		get: func(_ context.Context, _ string) (domain.DayPlan, error) {
			return domain.DayPlan{}, domain.ErrNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cities/atlantis/plan", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- POST /api/cities/{cityID}/plan/activities -----------------------------

func TestAddPlanActivity_201(t *testing.T) {
	fixture := planFixture()
	h := newPlanHTTPHandler(&mockPlanServicer{
		addActivity: func(_ context.Context, cityID, activityID, startTime string) (domain.DayPlan, error) {
			assert.Equal(t, "goa", cityID)
			assert.Equal(t, "goa-scuba", activityID)
			assert.Equal(t, "09:00", startTime)
			return fixture, nil
		},
	})

	body := jsonBody(t, map[string]any{"activityId": "goa-scuba", "startTime": "09:00"})
	req := httptest.NewRequest(http.MethodPost, "/api/cities/goa/plan/activities", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.DayPlan
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, fixture.TotalPrice, got.TotalPrice)
}

func TestAddPlanActivity_422_MissingFields(t *testing.T) {
	h := newPlanHTTPHandler(&mockPlanServicer{})

	body := jsonBody(t, map[string]any{"activityId": "goa-scuba"})
	req := httptest.NewRequest(http.MethodPost, "/api/cities/goa/plan/activities", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "startTime")
}

func TestAddPlanActivity_422_MalformedBody(t *testing.T) {
	h := newPlanHTTPHandler(&mockPlanServicer{})

	req := httptest.NewRequest(http.MethodPost, "/api/cities/goa/plan/activities", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAddPlanActivity_422_RuleViolation(t *testing.T) {
	cases := []struct {
		name    string
		message string
	}{
		{"overlap", "activity overlaps with existing activity from 09:00 to 12:00"},
		{"window", "activities must be between 06:00 and 22:00"},
		{"transfer", "only one transfer activity is allowed per day"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newPlanHTTPHandler(&mockPlanServicer{
				addActivity: func(_ context.Context, _, _, _ string) (domain.DayPlan, error) {
					return domain.DayPlan{}, fmt.Errorf("%w: %s", domain.ErrValidation, tc.message)
				},
			})

			body := jsonBody(t, map[string]any{"activityId": "goa-scuba", "startTime": "09:00"})
			req := httptest.NewRequest(http.MethodPost, "/api/cities/goa/plan/activities", body)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp handler.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "validation_error", resp.Error.Code)
			assert.Equal(t, tc.message, resp.Error.Message, "rule message must survive unwrapping")
		})
	}
}

func TestAddPlanActivity_404_UnknownActivity(t *testing.T) {
	h := newPlanHTTPHandler(&mockPlanServicer{
		addActivity: func(_ context.Context, _, _, _ string) (domain.DayPlan, error) {
			return domain.DayPlan{}, fmt.Errorf("service.PlanService.AddActivity: activity: %w", domain.ErrNotFound)
		},
	})

	body := jsonBody(t, map[string]any{"activityId": "nope", "startTime": "09:00"})
	req := httptest.NewRequest(http.MethodPost, "/api/cities/goa/plan/activities", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /api/cities/{cityID}/plan/activities/{entryID} -----------------

func TestRemovePlanActivity_200(t *testing.T) {
	entryID := uuid.New()
	empty := domain.DayPlan{CityID: "goa", Pax: 1, Activities: []domain.PlannedActivity{}, TotalPrice: 0}
	h := newPlanHTTPHandler(&mockPlanServicer{
		removeActivity: func(_ context.Context, cityID string, id uuid.UUID) (domain.DayPlan, error) {
			assert.Equal(t, "goa", cityID)
			assert.Equal(t, entryID, id)
			return empty, nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/cities/goa/plan/activities/%s", entryID), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.DayPlan
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Empty(t, got.Activities)
}

func TestRemovePlanActivity_422_BadUUID(t *testing.T) {
	h := newPlanHTTPHandler(&mockPlanServicer{})

	req := httptest.NewRequest(http.MethodDelete, "/api/cities/goa/plan/activities/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRemovePlanActivity_404(t *testing.T) {
	h := newPlanHTTPHandler(&mockPlanServicer{
		removeActivity: func(_ context.Context, _ string, _ uuid.UUID) (domain.DayPlan, error) {
			return domain.DayPlan{}, domain.ErrNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/cities/goa/plan/activities/%s", uuid.New()), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PUT /api/cities/{cityID}/plan/pax -------------------------------------

func TestSetPax_200(t *testing.T) {
	fixture := planFixture()
	fixture.Pax = 2
	fixture.TotalPrice = 7000
	h := newPlanHTTPHandler(&mockPlanServicer{
		setPax: func(_ context.Context, cityID string, pax int) (domain.DayPlan, error) {
			assert.Equal(t, "goa", cityID)
			assert.Equal(t, 2, pax)
			return fixture, nil
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/api/cities/goa/plan/pax", jsonBody(t, map[string]any{"pax": 2}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.DayPlan
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 2, got.Pax)
	assert.Equal(t, 7000.0, got.TotalPrice)
}

func TestSetPax_422_NonPositive(t *testing.T) {
	h := newPlanHTTPHandler(&mockPlanServicer{
		setPax: func(_ context.Context, _ string, _ int) (domain.DayPlan, error) {
			return domain.DayPlan{}, fmt.Errorf("%w: pax must be at least 1", domain.ErrValidation)
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/api/cities/goa/plan/pax", jsonBody(t, map[string]any{"pax": 0}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "pax must be at least 1", resp.Error.Message)
}
