package planner

import (
	"fmt"

	"github.com/day-planner/backend/internal/domain"
)

// HasOverlap reports whether two half-open time intervals intersect.
// Intervals that merely touch at an endpoint (A ends exactly when B starts)
// do not overlap: back-to-back activities are allowed.
func HasOverlap(startA, endA, startB, endB string) (bool, error) {
	aStart, err := TimeToMinutes(startA)
	if err != nil {
		return false, err
	}
	aEnd, err := TimeToMinutes(endA)
	if err != nil {
		return false, err
	}
	bStart, err := TimeToMinutes(startB)
	if err != nil {
		return false, err
	}
	bEnd, err := TimeToMinutes(endB)
	if err != nil {
		return false, err
	}
	return aStart < bEnd && bStart < aEnd, nil
}

// ValidateNoOverlap checks a candidate interval against every already-planned
// entry and rejects on the first conflict found, naming the conflicting
// entry's window. It does not aggregate conflicts. An empty plan always
// passes.
func ValidateNoOverlap(entries []domain.PlannedActivity, newStart, newEnd string) (Result, error) {
	for _, planned := range entries {
		overlaps, err := HasOverlap(newStart, newEnd, planned.StartTime, planned.EndTime)
		if err != nil {
			return Result{}, err
		}
		if overlaps {
			return rejected(fmt.Sprintf(
				"activity overlaps with existing activity from %s to %s",
				planned.StartTime, planned.EndTime,
			)), nil
		}
	}
	return ok(), nil
}
