package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// StaffBlock is a clock-time window within a weekday during which a fixed
// number of staff are scheduled for an area.
type StaffBlock struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
	Count int              `json:"count"`
}

// Interval returns the block's span as a minute interval.
func (b StaffBlock) Interval() Interval {
	return Interval{Start: b.Start.Minutes(), End: b.End.Minutes()}
}

// ContainsInterval reports whether the block fully covers iv.
func (b StaffBlock) ContainsInterval(iv Interval) bool {
	return b.Interval().Contains(iv)
}

// DaySchedule is an area's operating schedule for one weekday.
type DaySchedule struct {
	Day            string             `json:"day"`
	IsOpen         bool               `json:"isOpen"`
	StaffBlocks    []StaffBlock       `json:"staffBlocks"`
	FixedTimeSlots []types.TimeString `json:"fixedTimeSlots"`
}

// StaffCountFor returns the staff capacity for iv: the count of the first
// staff block that fully contains it. An interval not fully contained within
// any single block has zero capacity, even when two adjacent blocks would
// cover it together. This straddle rule is deliberate and conservative.
func (d DaySchedule) StaffCountFor(iv Interval) int {
	if !d.IsOpen {
		return 0
	}
	for _, block := range d.StaffBlocks {
		if block.ContainsInterval(iv) {
			return block.Count
		}
	}
	return 0
}

// Area is a physical zone of the venue (e.g. bowling lanes, pool tables)
// with its own weekly staffing schedule.
type Area struct {
	ID       int64
	Name     string
	Schedule []DaySchedule
}

// DayScheduleFor returns the area's schedule record for the weekday of date.
// A missing record means the area is closed that day.
func (a *Area) DayScheduleFor(date time.Time) DaySchedule {
	day := date.Weekday().String()
	for _, s := range a.Schedule {
		if s.Day == day {
			return s
		}
	}
	return DaySchedule{Day: day, IsOpen: false}
}
