package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource (city, catalogue activity, or planned entry) does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. malformed time, overlapping interval, second transfer).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
