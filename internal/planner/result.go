package planner

// Result is the outcome of a single business-rule validation.
// A rejected Result carries a human-readable message naming the rule that
// failed; Message is empty when Valid is true.
//
// Business-rule failures are values, not errors: the error channel is
// reserved for malformed input (unparseable time strings).
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ok is the shared success value.
func ok() Result {
	return Result{Valid: true}
}

// rejected builds a failing Result with the given message.
func rejected(message string) Result {
	return Result{Valid: false, Message: message}
}
