package domain

// City is a destination with its own activity catalogue.
// Each city has at most one day plan.
type City struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}
