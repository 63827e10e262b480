package planner

import "github.com/day-planner/backend/internal/domain"

// Planning window boundaries in minutes since midnight.
// Activities must start at or after 06:00 and end at or before 22:00.
const (
	windowStart = 6 * 60  // 06:00
	windowEnd   = 22 * 60 // 22:00
)

// ValidateTimeWindow rejects a placement unless the whole interval lies
// inside the 06:00–22:00 planning window (boundaries inclusive). This is the
// only global placement constraint; it applies to every activity category.
func ValidateTimeWindow(start, end string) (Result, error) {
	startMin, err := TimeToMinutes(start)
	if err != nil {
		return Result{}, err
	}
	endMin, err := TimeToMinutes(end)
	if err != nil {
		return Result{}, err
	}
	if startMin < windowStart || endMin > windowEnd {
		return rejected("activities must be between 06:00 and 22:00"), nil
	}
	return ok(), nil
}

// ValidateTransferRule enforces the one-transfer-per-day constraint.
//
// If the candidate activity is absent from the catalogue or is not of the
// transfer category, the rule is trivially satisfied. Otherwise the plan is
// scanned for an existing transfer; entries whose activity id no longer
// resolves are skipped rather than treated as errors.
func ValidateTransferRule(catalogue Catalogue, entries []domain.PlannedActivity, activityID string) Result {
	candidate, found := catalogue.Lookup(activityID)
	if !found || candidate.Type != domain.TypeTransfer {
		return ok()
	}

	for _, planned := range entries {
		existing, found := catalogue.Lookup(planned.ActivityID)
		if found && existing.Type == domain.TypeTransfer {
			return rejected("only one transfer activity is allowed per day")
		}
	}
	return ok()
}
