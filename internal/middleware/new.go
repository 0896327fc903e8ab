package middleware

import (
	"meeting-concierge/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l log.Logger
}

// New creates the middleware set.
func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
