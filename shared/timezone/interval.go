package timezone

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval builds an interval with both bounds normalized to UTC.
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: ToUTC(start), End: ToUTC(end)}
}

// Valid reports whether both bounds are set and End is after Start.
func (i Interval) Valid() bool {
	return !i.Start.IsZero() && !i.End.IsZero() && i.End.After(i.Start)
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether i and other share at least one instant.
// Touching intervals (i.End == other.Start) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether t lies inside [Start, End).
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// UTC returns a copy of i with both bounds in UTC.
func (i Interval) UTC() Interval {
	return NewInterval(i.Start, i.End)
}
