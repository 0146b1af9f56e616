package domain

import (
	"regexp"
	"strings"
	"time"
)

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDueDate parses a due date from the wire. Plain YYYY-MM-DD values are
// anchored at local midnight; anything else is accepted if it parses as
// RFC 3339. Returns false for blank or unparseable input.
func ParseDueDate(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, false
	}
	if isoDateRegex.MatchString(v) {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.In(time.Local), true
	}
	return time.Time{}, false
}

// AddMonthsClamped advances t by the given number of calendar months,
// clamping the day-of-month to the last valid day of the target month
// (Jan 31 + 1 month is Feb 28/29, never Mar 3).
func AddMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Midnight truncates t to local midnight.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
