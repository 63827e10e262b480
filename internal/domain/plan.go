package domain

import "github.com/google/uuid"

// PlannedActivity is one scheduled occurrence of a catalogue activity within
// a day plan. ActivityID is a lookup key into the catalogue, not an owning
// reference: the activity may disappear from the catalogue later, in which
// case the entry degrades gracefully (zero price, rule checks skip it).
//
// EndTime is derived from StartTime plus the activity's duration at insertion
// time and stored as-is; it is never re-derived afterwards.
type PlannedActivity struct {
	ID         uuid.UUID `json:"id"`
	ActivityID string    `json:"activityId"`
	StartTime  string    `json:"startTime"` // "HH:MM", 24-hour, zero-padded
	EndTime    string    `json:"endTime"`
}

// DayPlan is the aggregate being built: all activities scheduled for a single
// day in one city, for one group of travellers.
//
// Activities are ordered by start time ascending; entries sharing a start time
// keep insertion order. TotalPrice is derived and recomputed after every
// mutation — it is never trusted as authoritative input.
type DayPlan struct {
	CityID     string            `json:"cityId"`
	Pax        int               `json:"pax"` // participant count, always >= 1
	Activities []PlannedActivity `json:"activities"`
	TotalPrice float64           `json:"totalPrice"`
}
