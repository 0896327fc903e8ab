package calendar

import "meeting-concierge/internal/model"

// ScheduledEvent is the transient reference returned from a booking call.
// The event itself is owned by the calendar provider; nothing is persisted
// locally.
type ScheduledEvent struct {
	EventID        string           `json:"event_id"`
	Attendees      []string         `json:"attendees"` // organizer first, provider order preserved
	Window         model.TimeWindow `json:"window"`
	ConferenceLink string           `json:"conference_link,omitempty"`
	HtmlLink       string           `json:"html_link,omitempty"`
}
