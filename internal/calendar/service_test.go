package calendar

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"meeting-concierge/internal/model"
	"meeting-concierge/pkg/gcalendar"
)

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

// fakeProvider serves canned busy calendars and records calls.
type fakeProvider struct {
	busy        map[string]bool
	listErr     error
	createErr   error
	listedIDs   []string
	createdReqs []gcalendar.CreateEventRequest
}

func (f *fakeProvider) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.listedIDs = append(f.listedIDs, req.CalendarID)
	if f.busy[req.CalendarID] {
		return []gcalendar.Event{{ID: "busy-1", Summary: "Existing Meeting"}}, nil
	}
	return nil, nil
}

func (f *fakeProvider) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdReqs = append(f.createdReqs, req)
	return &gcalendar.Event{
		ID:          "event-1",
		Attendees:   req.Attendees,
		HangoutLink: "https://meet.google.com/abc",
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

func testWindow() model.TimeWindow {
	start := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	return model.TimeWindow{Start: start, End: start.Add(time.Hour)}
}

func TestIsAvailable(t *testing.T) {
	provider := &fakeProvider{busy: map[string]bool{"busy@x.com": true}}
	svc := NewService(nopLogger{}, provider, "UTC")

	available, err := svc.IsAvailable(context.Background(), "free@x.com", testWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !available {
		t.Errorf("zero overlapping events should mean available")
	}

	available, err = svc.IsAvailable(context.Background(), "busy@x.com", testWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if available {
		t.Errorf("an overlapping event should mean unavailable")
	}
}

func TestIsAvailableInvalidWindow(t *testing.T) {
	svc := NewService(nopLogger{}, &fakeProvider{}, "UTC")

	w := testWindow()
	w.End = w.Start
	if _, err := svc.IsAvailable(context.Background(), "a@x.com", w); err == nil {
		t.Errorf("expected error for degenerate window")
	}
}

func TestIsGroupAvailable(t *testing.T) {
	t.Run("all free", func(t *testing.T) {
		provider := &fakeProvider{busy: map[string]bool{}}
		svc := NewService(nopLogger{}, provider, "UTC")

		ok, err := svc.IsGroupAvailable(context.Background(), []string{"a@x.com", "b@x.com"}, testWindow())
		if err != nil || !ok {
			t.Fatalf("expected group available, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("short-circuits on first busy member", func(t *testing.T) {
		provider := &fakeProvider{busy: map[string]bool{"b@x.com": true}}
		svc := NewService(nopLogger{}, provider, "UTC")

		ok, err := svc.IsGroupAvailable(context.Background(), []string{"a@x.com", "b@x.com", "c@x.com"}, testWindow())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Errorf("one busy member should make the group unavailable")
		}
		// c@x.com must never be queried.
		if !reflect.DeepEqual(provider.listedIDs, []string{"a@x.com", "b@x.com"}) {
			t.Errorf("expected short-circuit after busy member, queried: %v", provider.listedIDs)
		}
	})

	t.Run("empty group is vacuously available", func(t *testing.T) {
		svc := NewService(nopLogger{}, &fakeProvider{}, "UTC")
		ok, err := svc.IsGroupAvailable(context.Background(), nil, testWindow())
		if err != nil || !ok {
			t.Errorf("empty member list should be available, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("provider error propagates", func(t *testing.T) {
		provider := &fakeProvider{listErr: fmt.Errorf("calendar API down")}
		svc := NewService(nopLogger{}, provider, "UTC")
		if _, err := svc.IsGroupAvailable(context.Background(), []string{"a@x.com"}, testWindow()); err == nil {
			t.Errorf("expected upstream error to propagate")
		}
	})
}

func TestBook(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewService(nopLogger{}, provider, "UTC")

	attendees := []string{"organizer@x.com", "guest1@x.com", "guest2@x.com"}
	event, err := svc.Book(context.Background(), attendees, testWindow(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if event.EventID != "event-1" {
		t.Errorf("unexpected event id: %s", event.EventID)
	}
	if event.ConferenceLink == "" {
		t.Errorf("expected a conference link")
	}
	if !reflect.DeepEqual(event.Attendees, attendees) {
		t.Errorf("attendee order not preserved: %v", event.Attendees)
	}

	sent := provider.createdReqs[0]
	if sent.Attendees[0] != "organizer@x.com" {
		t.Errorf("organizer must be first attendee sent to provider: %v", sent.Attendees)
	}
	if sent.Summary != "Proposed Meeting" {
		t.Errorf("expected default summary, got %q", sent.Summary)
	}
}

func TestBookErrors(t *testing.T) {
	svc := NewService(nopLogger{}, &fakeProvider{}, "UTC")

	if _, err := svc.Book(context.Background(), nil, testWindow(), ""); !errors.Is(err, ErrNoAttendees) {
		t.Errorf("expected ErrNoAttendees, got %v", err)
	}

	failing := NewService(nopLogger{}, &fakeProvider{createErr: fmt.Errorf("quota exceeded")}, "UTC")
	if _, err := failing.Book(context.Background(), []string{"a@x.com"}, testWindow(), ""); err == nil {
		t.Errorf("expected booking error to propagate")
	}
}
