package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// Attendees[0] is used as the organizing calendar.
type CreateEventRequest struct {
	Summary     string
	Description string
	Attendees   []string // calendar identities (emails), organizer first
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "UTC"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	HangoutLink string
	Attendees   []string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
