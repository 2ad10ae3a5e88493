package format

import (
	"testing"
	"time"
)

func utcLocale() Locale {
	l := DefaultLocale
	l.Location = time.UTC
	return l
}

func TestRelativeDate(t *testing.T) {
	l := utcLocale()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	ts := func(d time.Duration) string { return now.Add(-d).Format(time.RFC3339Nano) }

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"absent", "", "N/A"},
		{"exact now", ts(0), "Today"},
		{"24h earlier", ts(24 * time.Hour), "Yesterday"},
		{"one hour earlier rounds up", ts(time.Hour), "Yesterday"},
		{"3 days earlier", ts(72 * time.Hour), "3 days ago"},
		{"6 days earlier", ts(6 * 24 * time.Hour), "6 days ago"},
		{"7 days earlier", ts(7 * 24 * time.Hour), "3/8/2026"},
		{"10 days earlier", ts(10 * 24 * time.Hour), "3/5/2026"},
		{"future is symmetric", now.Add(72 * time.Hour).Format(time.RFC3339), "3 days ago"},
		{"garbage", "not a date", InvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.RelativeDate(tt.in, now); got != tt.want {
				t.Fatalf("RelativeDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTimestampShapes(t *testing.T) {
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	inputs := []string{
		"2026-01-02T03:04:05Z",
		"2026-01-02T03:04:05+00:00",
		"2026-01-02T03:04:05.000000+00:00",
		"2026-01-02T03:04:05",
		"2026-01-02 03:04:05",
	}
	for _, in := range inputs {
		got, err := ParseTimestamp(in, time.UTC)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseTimestamp(%q) = %v, want %v", in, got, want)
		}
	}

	d, err := ParseTimestamp("2026-01-02", time.FixedZone("X", 3600))
	if err != nil {
		t.Fatalf("date only: %v", err)
	}
	if !d.Equal(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date only should be UTC midnight, got %v", d)
	}
}

func TestDateTime(t *testing.T) {
	l := utcLocale()
	if got := l.DateTime("2026-10-19T14:05:09Z"); got != "10/19/2026, 2:05:09 PM" {
		t.Fatalf("DateTime = %q", got)
	}
	if got := l.DateTime("yesterday-ish"); got != InvalidDate {
		t.Fatalf("DateTime(garbage) = %q", got)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	if d := DaysBetween(a, a); d != 0 {
		t.Fatalf("same instant = %d", d)
	}
	if d := DaysBetween(a, a.Add(-time.Millisecond)); d != 1 {
		t.Fatalf("1ms = %d", d)
	}
	if d := DaysBetween(a, a.Add(-time.Microsecond)); d != 0 {
		t.Fatalf("sub-millisecond = %d", d)
	}
	if d := DaysBetween(a.Add(-48*time.Hour), a); d != 2 {
		t.Fatalf("reversed args = %d", d)
	}

	far := time.Date(2500, 1, 1, 0, 0, 0, 0, time.UTC)
	if d := DaysBetween(a, far); d != 173116 {
		t.Fatalf("far future = %d", d)
	}
	if d := DaysBetween(far, a); d != 173116 {
		t.Fatalf("far past = %d", d)
	}
}

func TestRelativeDateFarAway(t *testing.T) {
	l := utcLocale()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	for in, want := range map[string]string{
		"2500-01-01T00:00:00Z": "1/1/2500",
		"1600-06-15T00:00:00Z": "6/15/1600",
	} {
		if got := l.RelativeDate(in, now); got != want {
			t.Errorf("RelativeDate(%q) = %q, want %q", in, got, want)
		}
	}
}
