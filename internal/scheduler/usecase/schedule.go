package usecase

import (
	"context"
	"fmt"

	"meeting-concierge/internal/model"
	"meeting-concierge/internal/scheduler"
)

// ScheduleMeeting resolves the target identities, requires unanimous
// availability and then books, or falls back to the suggestion generator
// when the window is busy. Availability is a point-in-time check; a booking
// can still race with a concurrent calendar write.
func (uc *implUseCase) ScheduleMeeting(ctx context.Context, input scheduler.ScheduleMeetingInput) (scheduler.ScheduleMeetingOutput, error) {
	if err := input.Window.Validate(); err != nil {
		return scheduler.ScheduleMeetingOutput{}, err
	}

	attendees := input.Participants
	if input.GroupName != "" {
		members, err := uc.groups.GetMembers(input.GroupName)
		if err != nil {
			return scheduler.ScheduleMeetingOutput{}, err
		}
		attendees = members
	}
	if len(attendees) == 0 {
		return scheduler.ScheduleMeetingOutput{}, scheduler.ErrNoParticipants
	}

	available, err := uc.calendar.IsGroupAvailable(ctx, attendees, input.Window)
	if err != nil {
		return scheduler.ScheduleMeetingOutput{}, fmt.Errorf("check availability: %w", err)
	}

	if !available {
		uc.l.Infof(ctx, "ScheduleMeeting: window %s busy for %d attendees, suggesting alternatives",
			input.Window.Start.Format("2006-01-02 15:04"), len(attendees))

		text, err := uc.suggester.Suggest(ctx, []model.TimeWindow{input.Window}, uc.hours)
		if err != nil {
			return scheduler.ScheduleMeetingOutput{}, fmt.Errorf("suggest alternatives: %w", err)
		}
		return scheduler.ScheduleMeetingOutput{Suggestion: text}, nil
	}

	event, err := uc.calendar.Book(ctx, attendees, input.Window, input.Summary)
	if err != nil {
		return scheduler.ScheduleMeetingOutput{}, fmt.Errorf("book meeting: %w", err)
	}

	uc.l.Infof(ctx, "ScheduleMeeting: booked event %s for %d attendees", event.EventID, len(event.Attendees))
	return scheduler.ScheduleMeetingOutput{Scheduled: true, Event: event}, nil
}
