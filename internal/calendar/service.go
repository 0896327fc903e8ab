package calendar

import (
	"context"
	"fmt"

	"meeting-concierge/internal/model"
	"meeting-concierge/pkg/gcalendar"
	"meeting-concierge/pkg/log"
)

const defaultEventSummary = "Proposed Meeting"

type service struct {
	l        log.Logger
	provider ProviderClient
	timezone string
}

// NewService creates the availability/booking service over a calendar
// provider client.
func NewService(l log.Logger, provider ProviderClient, timezone string) *service {
	if timezone == "" {
		timezone = "UTC"
	}
	return &service{
		l:        l,
		provider: provider,
		timezone: timezone,
	}
}

func (s *service) IsAvailable(ctx context.Context, calendarID string, window model.TimeWindow) (bool, error) {
	if err := window.Validate(); err != nil {
		return false, err
	}

	events, err := s.provider.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    window.Start,
		TimeMax:    window.End,
	})
	if err != nil {
		return false, fmt.Errorf("availability check for %s: %w", calendarID, err)
	}

	return len(events) == 0, nil
}

func (s *service) IsGroupAvailable(ctx context.Context, members []string, window model.TimeWindow) (bool, error) {
	for _, calendarID := range members {
		available, err := s.IsAvailable(ctx, calendarID, window)
		if err != nil {
			return false, err
		}
		if !available {
			s.l.Infof(ctx, "group availability: %s is busy, short-circuiting", calendarID)
			return false, nil
		}
	}
	return true, nil
}

func (s *service) Book(ctx context.Context, attendees []string, window model.TimeWindow, summary string) (*ScheduledEvent, error) {
	if len(attendees) == 0 {
		return nil, ErrNoAttendees
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if summary == "" {
		summary = defaultEventSummary
	}

	created, err := s.provider.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:   summary,
		Attendees: attendees,
		StartTime: window.Start,
		EndTime:   window.End,
		Timezone:  s.timezone,
	})
	if err != nil {
		return nil, fmt.Errorf("booking meeting: %w", err)
	}

	s.l.Infof(ctx, "booked event %s for %d attendees", created.ID, len(attendees))

	resultAttendees := created.Attendees
	if len(resultAttendees) == 0 {
		resultAttendees = attendees
	}

	return &ScheduledEvent{
		EventID:        created.ID,
		Attendees:      resultAttendees,
		Window:         window,
		ConferenceLink: created.HangoutLink,
		HtmlLink:       created.HtmlLink,
	}, nil
}

var _ Service = (*service)(nil)
