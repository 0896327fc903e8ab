package scheduler

import "errors"

// Domain-specific errors for the scheduler package.
var (
	ErrEmptyQuery     = errors.New("user input is empty")
	ErrNoParticipants = errors.New("no participants to schedule for")
)
