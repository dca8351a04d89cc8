package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// ScheduleOverride replaces the area's default canonical start times for a
// single resource on a single calendar date. It takes precedence over the
// weekday defaults of the area's day record.
type ScheduleOverride struct {
	ID             int64
	ResourceID     int64
	Date           time.Time
	FixedTimeSlots []types.TimeString
}

// Matches reports whether the override applies to the resource and date.
func (o *ScheduleOverride) Matches(resourceID int64, date time.Time) bool {
	return o.ResourceID == resourceID && sameDay(o.Date, date)
}
