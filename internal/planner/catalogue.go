package planner

import "github.com/day-planner/backend/internal/domain"

// Catalogue is an id → Activity lookup over the caller-supplied activity
// catalogue. Planned entries reference activities by identifier only, so
// every engine function that needs activity attributes resolves them through
// a Catalogue. A dangling reference resolves to "not found" and degrades
// gracefully (zero price, rule checks skip the entry).
type Catalogue map[string]domain.Activity

// NewCatalogue builds a Catalogue from a slice of activities.
// Later duplicates of the same id win, matching a last-write catalogue load.
func NewCatalogue(activities []domain.Activity) Catalogue {
	c := make(Catalogue, len(activities))
	for _, a := range activities {
		c[a.ID] = a
	}
	return c
}

// Lookup resolves an activity by id.
func (c Catalogue) Lookup(id string) (domain.Activity, bool) {
	a, found := c[id]
	return a, found
}
