package tools

import (
	"context"
	"time"

	"meeting-concierge/internal/scheduler"
	"meeting-concierge/pkg/datemath"
	pkgLog "meeting-concierge/pkg/log"
)

type ScheduleMeetingTool struct {
	scheduler scheduler.UseCase
	dateMath  *datemath.Parser
	l         pkgLog.Logger
	clock     func() time.Time
}

func NewScheduleMeetingTool(uc scheduler.UseCase, dateMath *datemath.Parser, l pkgLog.Logger) *ScheduleMeetingTool {
	return &ScheduleMeetingTool{
		scheduler: uc,
		dateMath:  dateMath,
		l:         l,
		clock:     time.Now,
	}
}

func (t *ScheduleMeetingTool) Name() string {
	return "schedule_meeting"
}

func (t *ScheduleMeetingTool) Description() string {
	return "Schedule a meeting for a group or an explicit attendee list. Books only if everyone is free; otherwise returns suggested alternative slots. The first attendee becomes the organizer."
}

func (t *ScheduleMeetingTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"group_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of a registered group. Takes precedence over attendees.",
			},
			"attendees": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Attendee email addresses, organizer first",
			},
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Date in YYYY-MM-DD format, or a relative expression like 'tomorrow' or 'next tuesday'",
			},
			"start_time": map[string]interface{}{
				"type":        "string",
				"description": "Meeting start in HH:MM (24h)",
			},
			"end_time": map[string]interface{}{
				"type":        "string",
				"description": "Meeting end in HH:MM (24h)",
			},
			"summary": map[string]interface{}{
				"type":        "string",
				"description": "Event title",
			},
		},
		"required": []string{"date", "start_time", "end_time"},
	}
}

type ScheduleMeetingInput struct {
	GroupName string   `json:"group_name"`
	Attendees []string `json:"attendees"`
	Date      string   `json:"date"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Summary   string   `json:"summary"`
}

type ScheduleMeetingToolOutput struct {
	Scheduled      bool     `json:"scheduled"`
	EventID        string   `json:"event_id,omitempty"`
	Attendees      []string `json:"attendees,omitempty"`
	ConferenceLink string   `json:"conference_link,omitempty"`
	Suggestion     string   `json:"suggestion,omitempty"`
}

func (t *ScheduleMeetingTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input ScheduleMeetingInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	window, err := parseWindow(t.dateMath, t.clock(), input.Date, input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}

	out, err := t.scheduler.ScheduleMeeting(ctx, scheduler.ScheduleMeetingInput{
		GroupName:    input.GroupName,
		Participants: input.Attendees,
		Window:       window,
		Summary:      input.Summary,
	})
	if err != nil {
		return nil, err
	}

	result := ScheduleMeetingToolOutput{
		Scheduled:  out.Scheduled,
		Suggestion: out.Suggestion,
	}
	if out.Event != nil {
		result.EventID = out.Event.EventID
		result.Attendees = out.Event.Attendees
		result.ConferenceLink = out.Event.ConferenceLink
	}

	t.l.Infof(ctx, "schedule_meeting: scheduled=%t event=%s", result.Scheduled, result.EventID)
	return result, nil
}
