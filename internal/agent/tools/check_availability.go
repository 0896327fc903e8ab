package tools

import (
	"context"
	"time"

	"meeting-concierge/internal/calendar"
	"meeting-concierge/internal/model"
	"meeting-concierge/pkg/datemath"
	pkgLog "meeting-concierge/pkg/log"
)

type CheckAvailabilityTool struct {
	calendar calendar.Service
	dateMath *datemath.Parser
	l        pkgLog.Logger
	clock    func() time.Time
}

func NewCheckAvailabilityTool(cal calendar.Service, dateMath *datemath.Parser, l pkgLog.Logger) *CheckAvailabilityTool {
	return &CheckAvailabilityTool{
		calendar: cal,
		dateMath: dateMath,
		l:        l,
		clock:    time.Now,
	}
}

func (t *CheckAvailabilityTool) Name() string {
	return "check_availability"
}

func (t *CheckAvailabilityTool) Description() string {
	return "Check if a user is available for a specific time slot. Takes a calendar identity (email), a date and a start/end time."
}

func (t *CheckAvailabilityTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"calendar_id": map[string]interface{}{
				"type":        "string",
				"description": "Email address identifying the calendar to check",
			},
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Date in YYYY-MM-DD format, or a relative expression like 'tomorrow' or 'next tuesday'",
			},
			"start_time": map[string]interface{}{
				"type":        "string",
				"description": "Slot start in HH:MM (24h)",
			},
			"end_time": map[string]interface{}{
				"type":        "string",
				"description": "Slot end in HH:MM (24h)",
			},
		},
		"required": []string{"calendar_id", "date", "start_time", "end_time"},
	}
}

type CheckAvailabilityInput struct {
	CalendarID string `json:"calendar_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type CheckAvailabilityOutput struct {
	CalendarID string           `json:"calendar_id"`
	Window     model.TimeWindow `json:"window"`
	Available  bool             `json:"available"`
}

func (t *CheckAvailabilityTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input CheckAvailabilityInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	window, err := parseWindow(t.dateMath, t.clock(), input.Date, input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}

	available, err := t.calendar.IsAvailable(ctx, input.CalendarID, window)
	if err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "check_availability: %s %s available=%t", input.CalendarID, input.Date, available)
	return CheckAvailabilityOutput{
		CalendarID: input.CalendarID,
		Window:     window,
		Available:  available,
	}, nil
}
