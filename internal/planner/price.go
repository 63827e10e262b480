package planner

import "github.com/day-planner/backend/internal/domain"

// TotalPrice sums price-per-participant × pax over every resolvable entry in
// the plan. Entries whose activity id is missing from the catalogue
// contribute zero instead of erroring, so the total reflects only resolvable
// entries — not catalogue integrity.
func TotalPrice(catalogue Catalogue, entries []domain.PlannedActivity, pax int) float64 {
	var total float64
	for _, planned := range entries {
		activity, found := catalogue.Lookup(planned.ActivityID)
		if !found {
			continue
		}
		total += activity.PricePerPax * float64(pax)
	}
	return total
}
