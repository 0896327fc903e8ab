package scheduler

import (
	"meeting-concierge/internal/calendar"
	"meeting-concierge/internal/model"
)

// ProcessQueryInput carries one user turn plus the conversation so far.
type ProcessQueryInput struct {
	UserInput string
	Duration  int // requested meeting length in minutes
	History   []model.ConversationMessage
}

// ProcessQueryOutput is the assistant's reply, returned verbatim from
// whichever branch handled the query.
type ProcessQueryOutput struct {
	Response string
}

// ScheduleMeetingInput targets either a named group or an explicit
// participant list. When GroupName is set it wins and Participants is
// ignored. The first resolved identity becomes the organizer.
type ScheduleMeetingInput struct {
	GroupName    string
	Participants []string
	Window       model.TimeWindow
	Summary      string
}

// ScheduleMeetingOutput reports either a booked event or, when the window
// was busy for at least one attendee, a prose suggestion of alternatives.
type ScheduleMeetingOutput struct {
	Scheduled  bool
	Event      *calendar.ScheduledEvent
	Suggestion string
}
