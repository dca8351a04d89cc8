package domain

import "github.com/m04kA/SMC-VenueService/pkg/types"

// Interval is a half-open [Start, End) time range within a single day,
// expressed in minutes since midnight. All occupancy and capacity
// arithmetic in the engine runs on these values.
type Interval struct {
	Start int
	End   int
}

// NewInterval builds an interval from a start time and a duration in minutes.
func NewInterval(start types.TimeString, durationMinutes int) Interval {
	s := start.Minutes()
	return Interval{Start: s, End: s + durationMinutes}
}

// Overlaps reports whether two half-open intervals truly intersect.
// Touching boundaries (one ends exactly where the other starts) do not count.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

// Contains reports whether other lies entirely within i.
func (i Interval) Contains(other Interval) bool {
	return i.Start <= other.Start && other.End <= i.End
}

// StartTime returns the interval start as a wall-clock time.
func (i Interval) StartTime() types.TimeString {
	return minutesToTimeString(i.Start)
}

// Duration returns the interval length in minutes.
func (i Interval) Duration() int {
	return i.End - i.Start
}

func minutesToTimeString(minutes int) types.TimeString {
	ts, err := types.TimeString("00:00").AddMinutes(minutes)
	if err != nil {
		return ""
	}
	return ts
}
