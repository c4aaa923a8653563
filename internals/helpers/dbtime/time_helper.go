// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the ISO-8601 calendar date used on the wire.
const DateLayout = "2006-01-02"

var (
	mu  sync.RWMutex
	loc = time.UTC
)

// SetLocation sets the timezone that decides which calendar day "today" is.
// Falls back to UTC when name is empty or unknown.
func SetLocation(name string) *time.Location {
	name = strings.TrimSpace(name)
	l := time.UTC
	if name != "" {
		if loaded, err := time.LoadLocation(name); err == nil {
			l = loaded
		}
	}
	mu.Lock()
	loc = l
	mu.Unlock()
	return l
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return loc
}

// DateOf returns the calendar day of t (read in t's own location) as a
// date anchored at midnight UTC, which is how dates are stored.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Today is the current calendar day in the configured location.
func Today(now time.Time) datatypes.Date {
	return DateOf(now.In(Location()))
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// SameDate compares two dates by calendar day only.
func SameDate(a, b datatypes.Date) bool {
	return FormatDate(a) == FormatDate(b)
}
