package domain

import "time"

// Closure excludes a calendar date from booking venue-wide.
type Closure struct {
	ID     int64
	Date   time.Time
	Reason *string
}

// Matches reports whether the closure applies to the given date.
func (c *Closure) Matches(date time.Time) bool {
	return sameDay(c.Date, date)
}
