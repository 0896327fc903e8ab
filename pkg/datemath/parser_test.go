package datemath_test

import (
	"testing"
	"time"

	"meeting-concierge/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Not/A-Zone"); err == nil {
		t.Errorf("expected error for invalid timezone")
	}
	if _, err := datemath.NewParser("UTC"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse(t *testing.T) {
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Wednesday
	base := time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		expr string
		want time.Time
	}{
		{"today", time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)},
		{"in 3 days", time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)},
		{"in 1 week", time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)},
		{"next tuesday", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{"friday", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)},
		{"2026-12-24", time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := p.Parse(tc.expr, base)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tc.expr, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("Parse(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}

	if _, err := p.Parse("whenever", base); err == nil {
		t.Errorf("expected error for unrecognized expression")
	}
}

func TestAt(t *testing.T) {
	p, _ := datemath.NewParser("UTC")
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	got := p.At(day, 15, 30)
	want := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At = %v, want %v", got, want)
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := datemath.ParseClock("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 9 || m != 30 {
		t.Errorf("ParseClock = %d:%d, want 9:30", h, m)
	}

	if _, _, err := datemath.ParseClock("nine thirty"); err == nil {
		t.Errorf("expected error for invalid clock time")
	}
}
