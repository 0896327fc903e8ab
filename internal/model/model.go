package model

import (
	"errors"
	"time"
)

// Environment represents the deployment environment
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Role is the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ConversationMessage is a single turn of a conversation.
// A chronological slice of these forms the conversation history.
type ConversationMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// TimeWindow is a half-open [Start, End) interval. Both ends carry an
// explicit location; UTC is used for all provider calls.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate checks the start < end invariant.
func (w TimeWindow) Validate() error {
	if !w.Start.Before(w.End) {
		return errors.New("time window start must be before end")
	}
	return nil
}

// Duration returns the window length.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
