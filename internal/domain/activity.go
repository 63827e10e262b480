// Package domain contains the core data types for the Day Planner application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (planner, repo, service, handler).
package domain

// ActivityType is the fixed category enumeration for catalogue activities.
// The transfer category is special: at most one transfer activity may be
// scheduled per day plan.
type ActivityType string

const (
	TypeWaterSport  ActivityType = "water_sport"
	TypeSightseeing ActivityType = "sightseeing"
	TypeAdventure   ActivityType = "adventure"
	TypeLeisure     ActivityType = "leisure"
	TypeWellness    ActivityType = "wellness"
	TypeTransfer    ActivityType = "transfer"
)

// Valid reports whether t is one of the six known activity categories.
func (t ActivityType) Valid() bool {
	switch t {
	case TypeWaterSport, TypeSightseeing, TypeAdventure, TypeLeisure, TypeWellness, TypeTransfer:
		return true
	}
	return false
}

// Activity is a catalogue entry: a bookable experience with a fixed duration
// and a per-participant price. Activities are loaded from the catalogue and
// treated as read-only by the scheduling engine.
type Activity struct {
	ID          string       `json:"id"`
	CityID      string       `json:"cityId"`
	Title       string       `json:"title"`
	Type        ActivityType `json:"type"`
	Duration    int          `json:"duration"` // minutes, always > 0
	PricePerPax float64      `json:"pricePerPax"`
}
