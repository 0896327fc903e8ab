package calendar

import (
	"context"

	"meeting-concierge/internal/model"
	"meeting-concierge/pkg/gcalendar"
)

// Service is the availability/booking contract consumed by the scheduling
// flow. Every check re-queries the provider; results reflect only the
// instant of query.
type Service interface {
	// IsAvailable reports true iff the provider lists zero events
	// overlapping the window for the calendar identity.
	IsAvailable(ctx context.Context, calendarID string, window model.TimeWindow) (bool, error)

	// IsGroupAvailable AND-reduces IsAvailable over members in list order,
	// short-circuiting on the first busy member. An empty member list is
	// vacuously available.
	IsGroupAvailable(ctx context.Context, members []string, window model.TimeWindow) (bool, error)

	// Book creates a provider-side event inviting all attendees with a
	// conference link. Attendees[0] is the organizing calendar; callers
	// must place the organizer first.
	Book(ctx context.Context, attendees []string, window model.TimeWindow, summary string) (*ScheduledEvent, error)
}

// ProviderClient abstracts the Google Calendar client for mocking.
type ProviderClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
