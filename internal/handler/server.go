// Package handler implements the HTTP handlers for the Day Planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, city.go, plan.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/day-planner/backend/internal/domain"
)

// CityServicer defines the business operations the city handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type CityServicer interface {
	List(ctx context.Context) ([]domain.City, error)
}

// ActivityServicer defines the catalogue operations the activity handler
// depends on.
type ActivityServicer interface {
	ListByCity(ctx context.Context, cityID string) ([]domain.Activity, error)
}

// PlanServicer defines the day-plan operations the plan handler depends on.
type PlanServicer interface {
	Get(ctx context.Context, cityID string) (domain.DayPlan, error)
	AddActivity(ctx context.Context, cityID, activityID, startTime string) (domain.DayPlan, error)
	RemoveActivity(ctx context.Context, cityID string, entryID uuid.UUID) (domain.DayPlan, error)
	SetPax(ctx context.Context, cityID string, pax int) (domain.DayPlan, error)
}

// Server holds the service dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	cities     CityServicer
	activities ActivityServicer
	plans      PlanServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(cities CityServicer, activities ActivityServicer, plans PlanServicer) *Server {
	return &Server{cities: cities, activities: activities, plans: plans}
}

// Routes builds the chi router for the full API surface.
// Cross-cutting middleware (logging, CORS, body limits) is applied by the
// caller in main.go, not here.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/api/health", s.GetHealth)
	r.Get("/api/cities", s.ListCities)
	r.Get("/api/cities/{cityID}/activities", s.ListActivities)

	r.Route("/api/cities/{cityID}/plan", func(r chi.Router) {
		r.Get("/", s.GetPlan)
		r.Post("/activities", s.AddPlanActivity)
		r.Delete("/activities/{entryID}", s.RemovePlanActivity)
		r.Put("/pax", s.SetPax)
	})

	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/docs", s.GetDocs)

	return r
}
