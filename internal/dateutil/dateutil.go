// Package dateutil provides the calendar arithmetic behind rollover detection
// and streak accounting. All dates are local-timezone YYYY-MM-DD strings.
package dateutil

import (
	"fmt"
	"time"
)

// Layout is the date string format used throughout the app.
const Layout = "2006-01-02"

// LocalDate formats t as YYYY-MM-DD in t's location.
func LocalDate(t time.Time) string {
	return t.Format(Layout)
}

// IsSameDay reports whether two date strings name the same calendar day.
func IsSameDay(d1, d2 string) bool {
	return d1 == d2
}

// IsToday reports whether d is the current local date.
func IsToday(d string, now time.Time) bool {
	return d == LocalDate(now)
}

// IsYesterday reports whether d1 is exactly one calendar day before d2.
// Both strings are parsed as date-only midnights so DST shifts and time
// components cannot skew the difference.
func IsYesterday(d1, d2 string) bool {
	t1, err1 := time.Parse(Layout, d1)
	t2, err2 := time.Parse(Layout, d2)
	if err1 != nil || err2 != nil {
		return false
	}
	return t2.Sub(t1) == 24*time.Hour
}

// IsBefore reports whether d1 names an earlier day than d2.
// YYYY-MM-DD strings order lexicographically.
func IsBefore(d1, d2 string) bool {
	return d1 < d2
}

// DayOfYear returns the day count since Jan 1 for a YYYY-MM-DD string,
// yielding 0 for Jan 1. The zero base is load-bearing: message-of-the-day
// selection has always cycled from index 0 and shipped builds depend on it.
func DayOfYear(d string) (int, error) {
	t, err := time.Parse(Layout, d)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", d, err)
	}
	return t.YearDay() - 1, nil
}

// TimeOfDay buckets a clock hour for greetings and notification copy.
type TimeOfDay int

const (
	Morning   TimeOfDay = iota // 05:00-11:59
	Afternoon                  // 12:00-16:59
	Evening                    // 17:00-04:59
)

// BucketFor returns the time-of-day bucket for now's local hour.
func BucketFor(now time.Time) TimeOfDay {
	hour := now.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	default:
		return Evening
	}
}

// Greeting returns the time-appropriate greeting for name.
func Greeting(name string, now time.Time) string {
	switch BucketFor(now) {
	case Morning:
		return "Good Morning " + name
	case Afternoon:
		return "Good Afternoon " + name
	default:
		return "Hello " + name
	}
}

// HasRolledOver reports whether a day boundary has passed since
// lastOpenedDate. An empty lastOpenedDate means first launch, which is not a
// rollover.
func HasRolledOver(lastOpenedDate string, now time.Time) bool {
	if lastOpenedDate == "" {
		return false
	}
	return lastOpenedDate != LocalDate(now)
}

// StreakAction is the decision recordCompletion takes for today's completion.
type StreakAction int

const (
	StreakContinue  StreakAction = iota // already completed today
	StreakIncrement                     // first ever, or consecutive day
	StreakReset                         // gap of two or more days
)

// CalculateStreakAction decides how the streak changes when a goal is
// completed on today, given the date of the most recent completion
// (empty if none).
func CalculateStreakAction(lastCompletedDate, today string) StreakAction {
	if lastCompletedDate == "" {
		return StreakIncrement
	}
	if IsSameDay(lastCompletedDate, today) {
		return StreakContinue
	}
	if IsYesterday(lastCompletedDate, today) {
		return StreakIncrement
	}
	return StreakReset
}
