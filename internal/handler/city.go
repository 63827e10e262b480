package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/day-planner/backend/internal/domain"
)

// ListCities handles GET /api/cities.
func (s *Server) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.cities.List(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

// ListActivities handles GET /api/cities/{cityID}/activities.
// It returns the full activity catalogue for one city.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "cityID")

	activities, err := s.activities.ListByCity(r.Context(), cityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "city not found")
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}
