package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"meeting-concierge/internal/model"
	"meeting-concierge/pkg/datemath"
)

// parseWindow turns a tool's (date, start_time, end_time) arguments into a
// concrete window. The date accepts relative expressions ("tomorrow",
// "next tuesday") as well as YYYY-MM-DD; clocks are HH:MM in the parser's
// location.
func parseWindow(p *datemath.Parser, now time.Time, date, startClock, endClock string) (model.TimeWindow, error) {
	day, err := p.Parse(date, now)
	if err != nil {
		return model.TimeWindow{}, fmt.Errorf("parse date %q: %w", date, err)
	}

	sh, sm, err := datemath.ParseClock(startClock)
	if err != nil {
		return model.TimeWindow{}, fmt.Errorf("parse start_time %q: %w", startClock, err)
	}
	eh, em, err := datemath.ParseClock(endClock)
	if err != nil {
		return model.TimeWindow{}, fmt.Errorf("parse end_time %q: %w", endClock, err)
	}

	window := model.TimeWindow{
		Start: p.At(day, sh, sm),
		End:   p.At(day, eh, em),
	}
	if err := window.Validate(); err != nil {
		return model.TimeWindow{}, err
	}
	return window, nil
}

// decodeParams round-trips the loosely typed argument map into the tool's
// input struct.
func decodeParams(params map[string]interface{}, dst interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode params: %w", err)
	}
	return nil
}
