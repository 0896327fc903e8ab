package scheduler

import (
	"context"
)

// UseCase defines the business logic interface for the scheduling domain.
type UseCase interface {
	// ProcessQuery routes a conversational utterance: scheduling queries are
	// answered from the full conversation history, company questions from the
	// document knowledge base, everything else by a generic completion.
	ProcessQuery(ctx context.Context, input ProcessQueryInput) (ProcessQueryOutput, error)

	// ScheduleMeeting checks unanimous availability for the target identities
	// and either books the meeting or proposes alternative slots.
	ScheduleMeeting(ctx context.Context, input ScheduleMeetingInput) (ScheduleMeetingOutput, error)
}

// CompanyKnowledge answers questions grounded in uploaded company documents.
// Implemented by the knowledge usecase; Ask returns knowledge.ErrNotTrained
// until at least one document batch has been ingested.
type CompanyKnowledge interface {
	Ask(ctx context.Context, query string) (string, error)
}
