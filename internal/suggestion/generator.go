package suggestion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meeting-concierge/internal/model"
	"meeting-concierge/pkg/log"
	"meeting-concierge/pkg/watsonx"
)

// WorkingHours bounds the slots the generator may propose.
type WorkingHours struct {
	Start string // HH:MM
	End   string // HH:MM
}

// Generator proposes replacement slots for rejected meeting windows. The
// result is prose from the language model, not machine-actionable windows;
// a human is expected to read it.
type Generator interface {
	Suggest(ctx context.Context, rejected []model.TimeWindow, hours WorkingHours) (string, error)
}

type generator struct {
	l       log.Logger
	gateway watsonx.IWatsonx
}

// New creates a suggestion generator backed by the language-model gateway.
func New(l log.Logger, gateway watsonx.IWatsonx) *generator {
	return &generator{
		l:       l,
		gateway: gateway,
	}
}

func (g *generator) Suggest(ctx context.Context, rejected []model.TimeWindow, hours WorkingHours) (string, error) {
	prompt := buildPrompt(rejected, hours)
	g.l.Debugf(ctx, "suggestion prompt: %s", prompt)

	text, err := g.gateway.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating alternative suggestion: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "No suggestion available at this time.", nil
	}
	return text, nil
}

func buildPrompt(rejected []model.TimeWindow, hours WorkingHours) string {
	dates := make([]string, len(rejected))
	for i, w := range rejected {
		dates[i] = fmt.Sprintf("%s - %s",
			w.Start.Format(time.RFC1123),
			w.End.Format(time.RFC1123))
	}

	return fmt.Sprintf(
		"The following meeting dates were unavailable: %s. "+
			"The working hours are from %s to %s. "+
			"Suggest alternative time slots within the next week that fall within the working hours "+
			"and might work for all attendees.",
		strings.Join(dates, ", "), hours.Start, hours.End)
}

var _ Generator = (*generator)(nil)
