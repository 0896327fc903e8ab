package usecase

import (
	"context"

	"meeting-concierge/internal/calendar"
	"meeting-concierge/internal/model"
	"meeting-concierge/internal/suggestion"
)

// Test doubles shared by the usecase tests. The gateway fake replies per
// prompt via a script function so each test controls the model's behavior
// without canned global state.

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type scriptedGateway struct {
	prompts []string
	reply   func(prompt string) (string, error)
}

func (g *scriptedGateway) Generate(ctx context.Context, input string) (string, error) {
	g.prompts = append(g.prompts, input)
	return g.reply(input)
}

func (g *scriptedGateway) Model() string { return "scripted" }

type fakeCalendar struct {
	available    bool
	availErr     error
	bookErr      error
	bookedWith   []string
	bookedWindow model.TimeWindow
}

func (f *fakeCalendar) IsAvailable(ctx context.Context, calendarID string, window model.TimeWindow) (bool, error) {
	return f.available, f.availErr
}

func (f *fakeCalendar) IsGroupAvailable(ctx context.Context, members []string, window model.TimeWindow) (bool, error) {
	return f.available, f.availErr
}

func (f *fakeCalendar) Book(ctx context.Context, attendees []string, window model.TimeWindow, summary string) (*calendar.ScheduledEvent, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	f.bookedWith = append([]string(nil), attendees...)
	f.bookedWindow = window
	return &calendar.ScheduledEvent{
		EventID:        "evt-1",
		Attendees:      attendees,
		Window:         window,
		ConferenceLink: "https://meet.example.com/evt-1",
	}, nil
}

type fakeDirectory struct {
	groups map[string][]string
	err    error
}

func (f *fakeDirectory) GetMembers(name string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.groups[name], nil
}

type fakeSuggester struct {
	text     string
	err      error
	rejected []model.TimeWindow
}

func (f *fakeSuggester) Suggest(ctx context.Context, rejected []model.TimeWindow, hours suggestion.WorkingHours) (string, error) {
	f.rejected = rejected
	return f.text, f.err
}

type fakeKnowledge struct {
	answer string
	err    error
	asked  []string
}

func (f *fakeKnowledge) Ask(ctx context.Context, query string) (string, error) {
	f.asked = append(f.asked, query)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}
