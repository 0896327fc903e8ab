package suggestion

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"meeting-concierge/internal/model"
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

type fakeGateway struct {
	lastPrompt string
	reply      string
	err        error
}

func (f *fakeGateway) Generate(ctx context.Context, input string) (string, error) {
	f.lastPrompt = input
	return f.reply, f.err
}

func (f *fakeGateway) Model() string { return "fake" }

func TestSuggest(t *testing.T) {
	gw := &fakeGateway{reply: "How about Tuesday 10:00-11:00?"}
	gen := New(nopLogger{}, gw)

	start := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	rejected := []model.TimeWindow{{Start: start, End: start.Add(time.Hour)}}

	text, err := gen.Suggest(context.Background(), rejected, WorkingHours{Start: "09:00", End: "17:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "How about Tuesday 10:00-11:00?" {
		t.Errorf("gateway text should be returned verbatim: %q", text)
	}

	for _, fragment := range []string{
		"unavailable",
		"from 09:00 to 17:00",
		"within the next week",
		"Tue, 01 Sep 2026 15:00:00 UTC",
	} {
		if !strings.Contains(gw.lastPrompt, fragment) {
			t.Errorf("prompt missing %q:\n%s", fragment, gw.lastPrompt)
		}
	}
}

func TestSuggestEmptyReply(t *testing.T) {
	gen := New(nopLogger{}, &fakeGateway{reply: "  "})

	text, err := gen.Suggest(context.Background(), nil, WorkingHours{Start: "09:00", End: "17:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "No suggestion available at this time." {
		t.Errorf("expected fallback text, got %q", text)
	}
}

func TestSuggestGatewayError(t *testing.T) {
	gen := New(nopLogger{}, &fakeGateway{err: fmt.Errorf("gateway unreachable")})

	if _, err := gen.Suggest(context.Background(), nil, WorkingHours{Start: "09:00", End: "17:00"}); err == nil {
		t.Errorf("expected error to propagate")
	}
}
