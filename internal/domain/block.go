package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Block is a manual, non-customer occupation of a resource (maintenance,
// private event, league reservation). It behaves exactly like a booking
// item for occupancy purposes but carries no customer or payment data.
// Blocks are administrator-asserted and bypass conflict validation.
type Block struct {
	ID              int64
	ResourceID      int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Reason          string

	CreatedAt time.Time
}

// Interval returns the block's occupied window as a minute interval.
func (b *Block) Interval() Interval {
	return NewInterval(b.StartTime, b.DurationMinutes)
}

// OnDate reports whether the block occupies the given calendar date.
func (b *Block) OnDate(date time.Time) bool {
	return sameDay(b.Date, date)
}
