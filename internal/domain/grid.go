package domain

import "github.com/m04kA/SMC-VenueService/pkg/types"

// ScheduleGrid is the fixed-width interval grid the availability computer
// walks: the venue's outer operating window partitioned into equal steps.
// It comes from configuration, not from hardcoded literals.
type ScheduleGrid struct {
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	StepMinutes int
}

// DefaultGrid returns the reference configuration: 08:00–23:00 in
// 15-minute steps.
func DefaultGrid() ScheduleGrid {
	return ScheduleGrid{
		OpenTime:    types.TimeString(DefaultOpenTime),
		CloseTime:   types.TimeString(DefaultCloseTime),
		StepMinutes: DefaultSlotStepMinutes,
	}
}

// Span returns the whole operating window as one interval.
func (g ScheduleGrid) Span() Interval {
	return Interval{Start: g.OpenTime.Minutes(), End: g.CloseTime.Minutes()}
}

// Intervals partitions the operating window into consecutive fixed-width
// intervals from opening to closing bound.
func (g ScheduleGrid) Intervals() []Interval {
	open := g.OpenTime.Minutes()
	close := g.CloseTime.Minutes()
	if g.StepMinutes <= 0 || close <= open {
		return nil
	}

	intervals := make([]Interval, 0, (close-open)/g.StepMinutes)
	for start := open; start+g.StepMinutes <= close; start += g.StepMinutes {
		intervals = append(intervals, Interval{Start: start, End: start + g.StepMinutes})
	}
	return intervals
}
