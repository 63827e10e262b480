package planner

import (
	"slices"
	"strings"

	"github.com/day-planner/backend/internal/domain"
)

// SortByStartTime orders plan entries by start time ascending, in place.
// Zero-padded "HH:MM" strings compare lexicographically in chronological
// order, and the stable sort keeps insertion order among equal start times.
func SortByStartTime(entries []domain.PlannedActivity) {
	slices.SortStableFunc(entries, func(a, b domain.PlannedActivity) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
}
