package timezone

import "time"

// ToUTC normalizes t to UTC. Local times are converted; times carrying any
// other location are converted through their offset.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// StartOfDayUTC returns 00:00:00 of t's UTC calendar day.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDayUTC returns the last representable instant of t's UTC calendar day.
func EndOfDayUTC(t time.Time) time.Time {
	return StartOfDayUTC(t).Add(24*time.Hour - time.Nanosecond)
}

// SameDayUTC reports whether a and b fall on the same UTC calendar day.
func SameDayUTC(a, b time.Time) bool {
	return StartOfDayUTC(a).Equal(StartOfDayUTC(b))
}

// HoursBetween returns the signed number of hours from `from` to `to`.
func HoursBetween(from, to time.Time) float64 {
	return to.UTC().Sub(from.UTC()).Hours()
}

// IsPast reports whether t is strictly before now.
func IsPast(t, now time.Time) bool {
	return t.UTC().Before(now.UTC())
}

// IsFuture reports whether t is strictly after now.
func IsFuture(t, now time.Time) bool {
	return t.UTC().After(now.UTC())
}

// AtClock places the time-of-day of clock on the UTC calendar day of date.
func AtClock(date, clock time.Time) time.Time {
	d := date.UTC()

	return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
}
