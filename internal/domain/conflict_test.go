package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

func proposedItem(resourceIDs []int64, start types.TimeString, duration int) []BookingItem {
	return []BookingItem{{
		ActivityID:      10,
		ResourceIDs:     resourceIDs,
		Date:            monday,
		StartTime:       start,
		DurationMinutes: duration,
	}}
}

func TestValidateBookingItems_Clean(t *testing.T) {
	catalog := bowlingCatalog(nil)
	areas := []*Area{bowlingArea(2)}

	conflict := ValidateBookingItems(proposedItem([]int64{1}, "10:00", 60), nil, nil, nil, catalog, areas)
	assert.Nil(t, conflict)
}

func TestValidateBookingItems_VenueClosed(t *testing.T) {
	catalog := bowlingCatalog(nil)
	areas := []*Area{bowlingArea(2)}
	closures := []*Closure{{ID: 1, Date: monday}}

	conflict := ValidateBookingItems(proposedItem([]int64{1}, "10:00", 60), nil, nil, closures, catalog, areas)
	require.NotNil(t, conflict)
	assert.Equal(t, ConflictVenueClosed, conflict.Kind)
	assert.True(t, errors.Is(conflict, ErrVenueClosed))
}

func TestValidateBookingItems_AreaClosed(t *testing.T) {
	catalog := bowlingCatalog(nil)
	area := bowlingArea(2)
	area.Schedule[0].IsOpen = false

	conflict := ValidateBookingItems(proposedItem([]int64{1}, "10:00", 60), nil, nil, nil, catalog, []*Area{area})
	require.NotNil(t, conflict)
	assert.Equal(t, ConflictAreaClosed, conflict.Kind)
	assert.True(t, errors.Is(conflict, ErrAreaClosed))
}

func TestValidateBookingItems_NoCoveringStaffBlock(t *testing.T) {
	catalog := bowlingCatalog(nil)
	area := bowlingArea(2)
	area.Schedule[0].StaffBlocks = []StaffBlock{
		{Start: "10:00", End: "12:00", Count: 2},
		{Start: "12:00", End: "14:00", Count: 2},
	}

	// 11:30-12:30 straddles the block boundary: zero capacity, area closed.
	conflict := ValidateBookingItems(proposedItem([]int64{1}, "11:30", 60), nil, nil, nil, catalog, []*Area{area})
	require.NotNil(t, conflict)
	assert.Equal(t, ConflictAreaClosed, conflict.Kind)
}

func TestValidateBookingItems_ResourceDoubleBooked(t *testing.T) {
	catalog := bowlingCatalog(nil)
	areas := []*Area{bowlingArea(2)}
	others := []*Booking{flexiBooking(1, []int64{1}, "10:00", 60)}

	// 10:30-11:30 overlaps the existing 10:00-11:00 on lane 1.
	conflict := ValidateBookingItems(proposedItem([]int64{1}, "10:30", 60), others, nil, nil, catalog, areas)
	require.NotNil(t, conflict)
	assert.Equal(t, ConflictResourceDoubleBooked, conflict.Kind)
	assert.True(t, errors.Is(conflict, ErrResourceDoubleBooked))
	require.NotNil(t, conflict.ResourceID)
	assert.Equal(t, int64(1), *conflict.ResourceID)
}

func TestValidateBookingItems_TouchingIntervalsDoNotConflict(t *testing.T) {
	catalog := bowlingCatalog(nil)
	areas := []*Area{bowlingArea(2)}
	others := []*Booking{flexiBooking(1, []int64{1}, "10:00", 60)}

	// 11:00 starts exactly where the existing booking ends.
	conflict := ValidateBookingItems(proposedItem([]int64{1}, "11:00", 60), others, nil, nil, catalog, areas)
	assert.Nil(t, conflict)
}

func TestValidateBookingItems_BlockOccupiesResource(t *testing.T) {
	catalog := bowlingCatalog(nil)
	areas := []*Area{bowlingArea(2)}
	blocks := []*Block{{ID: 1, ResourceID: 1, Date: monday, StartTime: "10:00", DurationMinutes: 120}}

	conflict := ValidateBookingItems(proposedItem([]int64{1}, "11:00", 60), nil, blocks, nil, catalog, areas)
	require.NotNil(t, conflict)
	assert.Equal(t, ConflictResourceDoubleBooked, conflict.Kind)
}

func TestValidateBookingItems_StaffCapacityExceeded(t *testing.T) {
	catalog := bowlingCatalog(nil)
	areas := []*Area{bowlingArea(1)}
	others := []*Booking{flexiBooking(1, []int64{1}, "10:00", 60)}

	// Lane 2 is free but the single staff unit slot is taken by lane 1.
	conflict := ValidateBookingItems(proposedItem([]int64{2}, "10:30", 60), others, nil, nil, catalog, areas)
	require.NotNil(t, conflict)
	assert.Equal(t, ConflictStaffCapacityExceeded, conflict.Kind)
	assert.True(t, errors.Is(conflict, ErrStaffCapacityExceeded))
}

func TestValidateBookingItems_LinkedResourceFitsCapacity(t *testing.T) {
	links := ResourceLinks{{ID: 1, ResourceIDs: []int64{1, 2}}}
	catalog := bowlingCatalog(links)
	areas := []*Area{bowlingArea(1)}
	others := []*Booking{flexiBooking(1, []int64{1}, "10:00", 60)}

	// Lane 2 shares lane 1's staff unit: no extra capacity consumed.
	conflict := ValidateBookingItems(proposedItem([]int64{2}, "10:00", 60), others, nil, nil, catalog, areas)
	assert.Nil(t, conflict)
}

func TestValidateBookingItems_MissingConfiguration(t *testing.T) {
	catalog := bowlingCatalog(nil)
	areas := []*Area{bowlingArea(2)}

	items := []BookingItem{{
		ActivityID:      999,
		ResourceIDs:     []int64{1},
		Date:            monday,
		StartTime:       "10:00",
		DurationMinutes: 60,
	}}
	conflict := ValidateBookingItems(items, nil, nil, nil, catalog, areas)
	require.NotNil(t, conflict)
	assert.Equal(t, ConflictMissingConfiguration, conflict.Kind)
	assert.True(t, errors.Is(conflict, ErrMissingConfiguration))
}

func TestValidateBookingItems_SelfExclusionOnEdit(t *testing.T) {
	catalog := bowlingCatalog(nil)
	areas := []*Area{bowlingArea(1)}

	// The edited booking was removed from others by the caller, so saving
	// it unchanged re-validates cleanly even at capacity 1.
	conflict := ValidateBookingItems(proposedItem([]int64{1}, "10:00", 60), nil, nil, nil, catalog, areas)
	assert.Nil(t, conflict)
}

func TestValidateBookingItems_ShortCircuitsOnFirstViolation(t *testing.T) {
	catalog := bowlingCatalog(nil)
	areas := []*Area{bowlingArea(1)}
	closures := []*Closure{{ID: 1, Date: monday}}
	others := []*Booking{flexiBooking(1, []int64{1}, "10:00", 60)}

	// Both a closure and a double-booking apply; the closure is checked
	// first and wins.
	conflict := ValidateBookingItems(proposedItem([]int64{1}, "10:00", 60), others, nil, closures, catalog, areas)
	require.NotNil(t, conflict)
	assert.Equal(t, ConflictVenueClosed, conflict.Kind)
}

func TestConflictError_Unwrap(t *testing.T) {
	kinds := map[ConflictKind]error{
		ConflictVenueClosed:           ErrVenueClosed,
		ConflictAreaClosed:            ErrAreaClosed,
		ConflictResourceDoubleBooked:  ErrResourceDoubleBooked,
		ConflictStaffCapacityExceeded: ErrStaffCapacityExceeded,
		ConflictMissingConfiguration:  ErrMissingConfiguration,
	}
	for kind, sentinel := range kinds {
		err := &ConflictError{Kind: kind, Message: "test"}
		assert.True(t, errors.Is(err, sentinel), string(kind))
	}
}
