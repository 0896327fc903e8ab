package tools

import (
	"context"
	"time"

	"meeting-concierge/internal/calendar"
	"meeting-concierge/internal/model"
	"meeting-concierge/internal/registry"
	"meeting-concierge/pkg/datemath"
	pkgLog "meeting-concierge/pkg/log"
)

type CheckGroupAvailabilityTool struct {
	calendar calendar.Service
	groups   registry.GroupDirectory
	dateMath *datemath.Parser
	l        pkgLog.Logger
	clock    func() time.Time
}

func NewCheckGroupAvailabilityTool(cal calendar.Service, groups registry.GroupDirectory, dateMath *datemath.Parser, l pkgLog.Logger) *CheckGroupAvailabilityTool {
	return &CheckGroupAvailabilityTool{
		calendar: cal,
		groups:   groups,
		dateMath: dateMath,
		l:        l,
		clock:    time.Now,
	}
}

func (t *CheckGroupAvailabilityTool) Name() string {
	return "check_group_availability"
}

func (t *CheckGroupAvailabilityTool) Description() string {
	return "Check if all members of a named group are available for a given time slot. Available only when every member's calendar is free."
}

func (t *CheckGroupAvailabilityTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"group_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of a registered group",
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
		"required": []string{"group_name", "date", "start_time", "end_time"},
	}
}

type CheckGroupAvailabilityInput struct {
	GroupName string `json:"group_name"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type CheckGroupAvailabilityOutput struct {
	GroupName string           `json:"group_name"`
	Members   []string         `json:"members"`
	Window    model.TimeWindow `json:"window"`
	Available bool             `json:"available"`
}

func (t *CheckGroupAvailabilityTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input CheckGroupAvailabilityInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	members, err := t.groups.GetMembers(input.GroupName)
	if err != nil {
		return nil, err
	}

	window, err := parseWindow(t.dateMath, t.clock(), input.Date, input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}

	available, err := t.calendar.IsGroupAvailable(ctx, members, window)
	if err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "check_group_availability: group=%s members=%d available=%t", input.GroupName, len(members), available)
	return CheckGroupAvailabilityOutput{
		GroupName: input.GroupName,
		Members:   members,
		Window:    window,
		Available: available,
	}, nil
}
