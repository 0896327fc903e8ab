package tools

import (
	"context"
	"time"

	"meeting-concierge/internal/model"
	"meeting-concierge/internal/suggestion"
	"meeting-concierge/pkg/datemath"
	pkgLog "meeting-concierge/pkg/log"
)

type SuggestAlternativeTool struct {
	suggester suggestion.Generator
	dateMath  *datemath.Parser
	hours     suggestion.WorkingHours
	l         pkgLog.Logger
	clock     func() time.Time
}

func NewSuggestAlternativeTool(suggester suggestion.Generator, dateMath *datemath.Parser, hours suggestion.WorkingHours, l pkgLog.Logger) *SuggestAlternativeTool {
	return &SuggestAlternativeTool{
		suggester: suggester,
		dateMath:  dateMath,
		hours:     hours,
		l:         l,
		clock:     time.Now,
	}
}

func (t *SuggestAlternativeTool) Name() string {
	return "suggest_alternative"
}

func (t *SuggestAlternativeTool) Description() string {
	return "Propose alternative meeting slots within working hours after a time slot turned out to be unavailable."
}

func (t *SuggestAlternativeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Rejected date in YYYY-MM-DD format, or a relative expression",
			},
			"start_time": map[string]interface{}{
				"type":        "string",
				"description": "Rejected slot start in HH:MM (24h)",
			},
			"end_time": map[string]interface{}{
				"type":        "string",
				"description": "Rejected slot end in HH:MM (24h)",
			},
		},
		"required": []string{"date", "start_time", "end_time"},
	}
}

type SuggestAlternativeInput struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type SuggestAlternativeOutput struct {
	Suggestion string `json:"suggestion"`
}

func (t *SuggestAlternativeTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input SuggestAlternativeInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	window, err := parseWindow(t.dateMath, t.clock(), input.Date, input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}

	text, err := t.suggester.Suggest(ctx, []model.TimeWindow{window}, t.hours)
	if err != nil {
		return nil, err
	}

	return SuggestAlternativeOutput{Suggestion: text}, nil
}
