package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const day = 24 * time.Hour

// InvalidDate is rendered for timestamps that cannot be parsed.
const InvalidDate = "Invalid Date"

// Locale controls how absolute dates are displayed.
type Locale struct {
	Location       *time.Location
	DateLayout     string
	DateTimeLayout string
}

var DefaultLocale = Locale{
	Location:       time.Local,
	DateLayout:     "1/2/2006",
	DateTimeLayout: "1/2/2006, 3:04:05 PM",
}

func (l Locale) loc() *time.Location {
	if l.Location == nil {
		return time.Local
	}
	return l.Location
}

// zoned layouts carry their own offset; the others are read in the
// locale's zone, except a bare date which is UTC midnight.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999Z07:00",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04",
	}
)

// ParseTimestamp accepts the ISO-8601 shapes the backend emits.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("format: unrecognised timestamp %q", s)
}

// DateTime renders a timestamp with the locale's date-time layout.
func (l Locale) DateTime(s string) string {
	t, err := ParseTimestamp(s, l.loc())
	if err != nil {
		return InvalidDate
	}
	return t.In(l.loc()).Format(l.DateTimeLayout)
}

// DaysBetween is ceil(|a-b| / 24h) at millisecond resolution.
func DaysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff == math.MinInt64 || diff == math.MaxInt64 {
		// Sub saturates beyond ~292 years; count in milliseconds instead.
		ms := a.UnixMilli() - b.UnixMilli()
		if ms < 0 {
			ms = -ms
		}
		msPerDay := day.Milliseconds()
		days := ms / msPerDay
		if ms%msPerDay != 0 {
			days++
		}
		return int(days)
	}
	if diff < 0 {
		diff = -diff
	}
	diff = diff.Truncate(time.Millisecond)
	days := int(diff / day)
	if diff%day != 0 {
		days++
	}
	return days
}

// RelativeDate renders s relative to now: "Today", "Yesterday",
// "N days ago" under a week, otherwise a calendar date. The distance is
// absolute, so future dates also read "days ago".
func (l Locale) RelativeDate(s string, now time.Time) string {
	if s == "" {
		return "N/A"
	}
	t, err := ParseTimestamp(s, l.loc())
	if err != nil {
		return InvalidDate
	}
	switch days := DaysBetween(now, t); {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.In(l.loc()).Format(l.DateLayout)
	}
}
