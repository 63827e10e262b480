package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/day-planner/backend/internal/domain"
)

// AddPlanActivityRequest is the body for POST .../plan/activities.
type AddPlanActivityRequest struct {
	ActivityID string `json:"activityId"`
	StartTime  string `json:"startTime"`
}

// SetPaxRequest is the body for PUT .../plan/pax.
type SetPaxRequest struct {
	Pax int `json:"pax"`
}

// GetPlan handles GET /api/cities/{cityID}/plan.
// A city that has never been planned gets an empty plan (pax=1, total 0).
func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "cityID")

	plan, err := s.plans.Get(r.Context(), cityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "city not found")
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// AddPlanActivity handles POST /api/cities/{cityID}/plan/activities.
// On success it returns 201 with the updated plan; validator rejections
// (window, overlap, transfer rule) come back as 422 with the rule message.
func (s *Server) AddPlanActivity(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "cityID")

	var req AddPlanActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.ActivityID == "" || req.StartTime == "" {
		writeBadRequest(w, "activityId and startTime are required")
		return
	}

	plan, err := s.plans.AddActivity(r.Context(), cityID, req.ActivityID, req.StartTime)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "city or activity not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			writeValidationError(w, err)
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

// RemovePlanActivity handles DELETE /api/cities/{cityID}/plan/activities/{entryID}.
// It returns the updated plan so clients can refresh without a second request.
func (s *Server) RemovePlanActivity(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "cityID")

	entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
	if err != nil {
		writeBadRequest(w, "invalid entry id")
		return
	}

	plan, err := s.plans.RemoveActivity(r.Context(), cityID, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "city or plan entry not found")
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// SetPax handles PUT /api/cities/{cityID}/plan/pax.
func (s *Server) SetPax(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "cityID")

	var req SetPaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	plan, err := s.plans.SetPax(r.Context(), cityID, req.Pax)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "city not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			writeValidationError(w, err)
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
