package calendar

import "errors"

// Domain-specific errors for the calendar package.
var (
	ErrNoAttendees = errors.New("at least one attendee is required")
)
