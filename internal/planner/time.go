// Package planner is the day-plan scheduling and pricing engine.
//
// Everything here is a pure function over values supplied by the caller: the
// engine holds no state, performs no I/O, and is safe to call concurrently.
// The service layer owns the load → validate → store sequence; this package
// only answers "is this placement allowed" and "what does the plan cost".
package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/day-planner/backend/internal/domain"
)

// TimeToMinutes parses a "HH:MM" clock string into minutes since midnight.
//
// The minute component must be in [0, 59]; the hour component must be
// non-negative but is deliberately not capped at 23, so derived end times
// past midnight (e.g. "25:00") stay representable and are rejected by the
// time-window validator with a window message instead of a parse error.
// Returns an error wrapping domain.ErrValidation on malformed input.
func TimeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: invalid time format %q", domain.ErrValidation, t)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time format %q", domain.ErrValidation, t)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time format %q", domain.ErrValidation, t)
	}
	if hours < 0 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("%w: invalid time format %q", domain.ErrValidation, t)
	}
	return hours*60 + mins, nil
}

// MinutesToTime formats minutes since midnight as a zero-padded "HH:MM"
// string. Values of 1440 or more are not wrapped onto a 24-hour clock:
// 1500 renders as "25:00". Keeping out-of-day values visible lets the
// window validator report them as placement violations.
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// CalculateEndTime returns the "HH:MM" end time for an activity starting at
// start and running for duration minutes. Duration is assumed non-negative.
func CalculateEndTime(start string, duration int) (string, error) {
	startMin, err := TimeToMinutes(start)
	if err != nil {
		return "", err
	}
	return MinutesToTime(startMin + duration), nil
}
