package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

func fixedDay(slots ...types.TimeString) DaySchedule {
	return DaySchedule{
		Day:            "Monday",
		IsOpen:         true,
		StaffBlocks:    []StaffBlock{{Start: "10:00", End: "22:00", Count: 2}},
		FixedTimeSlots: slots,
	}
}

func TestFixedSlotCandidates_FromDaySchedule(t *testing.T) {
	day := fixedDay("10:00", "12:00", "14:00")
	occ := BuildOccupancyIndex(monday, nil, nil, nil)

	candidates := FixedSlotCandidates(5, day, nil, occ, FixedSlotDurationMinutes)
	assert.Equal(t, []types.TimeString{"10:00", "12:00", "14:00"}, candidates)
}

func TestFixedSlotCandidates_OverrideReplacesDefaults(t *testing.T) {
	day := fixedDay("10:00", "12:00")
	override := &ScheduleOverride{
		ResourceID:     5,
		Date:           monday,
		FixedTimeSlots: []types.TimeString{"11:00", "13:00"},
	}
	occ := BuildOccupancyIndex(monday, nil, nil, nil)

	candidates := FixedSlotCandidates(5, day, override, occ, FixedSlotDurationMinutes)
	assert.Equal(t, []types.TimeString{"11:00", "13:00"}, candidates)
}

func TestFixedSlotCandidates_BusyCandidatesFiltered(t *testing.T) {
	day := fixedDay("10:00", "12:00", "14:00")

	// 11:30-12:30 on the resource overlaps the implied 12:00-13:00 window.
	blocks := []*Block{{ID: 1, ResourceID: 5, Date: monday, StartTime: "11:30", DurationMinutes: 60}}
	occ := BuildOccupancyIndex(monday, nil, blocks, nil)

	candidates := FixedSlotCandidates(5, day, nil, occ, FixedSlotDurationMinutes)
	assert.Equal(t, []types.TimeString{"10:00", "14:00"}, candidates)
}

func TestFixedSlotCandidates_OtherResourceOccupancyIgnored(t *testing.T) {
	day := fixedDay("10:00")

	bookings := []*Booking{flexiBooking(1, []int64{6}, "10:00", 60)}
	occ := BuildOccupancyIndex(monday, bookings, nil, nil)

	candidates := FixedSlotCandidates(5, day, nil, occ, FixedSlotDurationMinutes)
	assert.Equal(t, []types.TimeString{"10:00"}, candidates)
}

func TestFixedSlotCandidates_EmptySource(t *testing.T) {
	occ := BuildOccupancyIndex(monday, nil, nil, nil)
	assert.Empty(t, FixedSlotCandidates(5, fixedDay(), nil, occ, FixedSlotDurationMinutes))
}

func TestBookingStatus_Next(t *testing.T) {
	assert.Equal(t, StatusCheckedIn, StatusBooked.Next())
	assert.Equal(t, StatusDone, StatusCheckedIn.Next())
	assert.Equal(t, StatusBooked, StatusDone.Next())

	// Unknown statuses reset to the start of the cycle.
	assert.Equal(t, StatusBooked, BookingStatus("Cancelled").Next())
}

func TestActivityTiming_ValidItemDuration(t *testing.T) {
	timing := DefaultActivityTiming()

	fixed := &Activity{ID: 1, Type: ActivityFixedTime}
	assert.True(t, timing.ValidItemDuration(fixed, 60))
	assert.False(t, timing.ValidItemDuration(fixed, 90))
	assert.False(t, timing.ValidItemDuration(fixed, 0))

	flexi := &Activity{ID: 2, Type: ActivityFlexiTime}
	assert.True(t, timing.ValidItemDuration(flexi, 15))
	assert.True(t, timing.ValidItemDuration(flexi, 120))
	assert.False(t, timing.ValidItemDuration(flexi, 20))
	assert.False(t, timing.ValidItemDuration(flexi, 0))
	assert.False(t, timing.ValidItemDuration(flexi, -15))
}

func TestActivityTiming_ItemPrice(t *testing.T) {
	timing := DefaultActivityTiming()

	// Fixed time is a flat price per slot regardless of duration.
	fixed := &Activity{ID: 1, Type: ActivityFixedTime, Price: 50}
	assert.Equal(t, 50.0, timing.ItemPrice(fixed, 60))

	// Flexi time charges the price per step of booked duration.
	flexi := &Activity{ID: 2, Type: ActivityFlexiTime, Price: 20}
	assert.Equal(t, 20.0, timing.ItemPrice(flexi, 15))
	assert.Equal(t, 80.0, timing.ItemPrice(flexi, 60))
	assert.Equal(t, 120.0, timing.ItemPrice(flexi, 90))
}

func TestActivityTiming_CustomStepPricing(t *testing.T) {
	timing := ActivityTiming{FixedSlotMinutes: 30, FlexiStepMinutes: 10}

	fixed := &Activity{ID: 1, Type: ActivityFixedTime, Price: 40}
	assert.True(t, timing.ValidItemDuration(fixed, 30))
	assert.False(t, timing.ValidItemDuration(fixed, 60))
	assert.Equal(t, 40.0, timing.ItemPrice(fixed, 30))

	flexi := &Activity{ID: 2, Type: ActivityFlexiTime, Price: 5}
	assert.True(t, timing.ValidItemDuration(flexi, 50))
	assert.False(t, timing.ValidItemDuration(flexi, 15))
	assert.Equal(t, 25.0, timing.ItemPrice(flexi, 50))
}
