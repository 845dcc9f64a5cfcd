package usecase

import "errors"

// Sentinel errors shared by the services, matched with errors.Is.
// The provider client wraps ErrDependencyUnavailable around open-breaker
// rejections so callers can tell an outage from a bad request.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
