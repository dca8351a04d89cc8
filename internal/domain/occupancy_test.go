package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOccupancyIndex(t *testing.T) {
	links := ResourceLinks{{ID: 1, ResourceIDs: []int64{1, 2}}}

	bookings := []*Booking{
		flexiBooking(1, []int64{1}, "10:00", 60),
		flexiBooking(2, []int64{3}, "11:00", 30),
	}
	blocks := []*Block{{ID: 1, ResourceID: 2, Date: monday, StartTime: "12:00", DurationMinutes: 45}}

	idx := BuildOccupancyIndex(monday, bookings, blocks, links)

	require.Len(t, idx.ByResource[1], 1)
	require.Len(t, idx.ByResource[2], 1)
	require.Len(t, idx.ByResource[3], 1)

	// Resources 1 and 2 accumulate against the shared link unit.
	assert.Len(t, idx.ByUnit[StaffUnitID("link-1")], 2)
	assert.Len(t, idx.ByUnit[StaffUnitID("resource-3")], 1)
}

func TestBuildOccupancyIndex_FiltersOtherDates(t *testing.T) {
	other := flexiBooking(1, []int64{1}, "10:00", 60)
	other.Items[0].Date = monday.AddDate(0, 0, 1)

	idx := BuildOccupancyIndex(monday, []*Booking{other}, nil, nil)
	assert.Empty(t, idx.ByResource)
	assert.Empty(t, idx.ByUnit)
}

func TestOccupancyIndex_ResourceBusy(t *testing.T) {
	bookings := []*Booking{flexiBooking(1, []int64{1}, "10:00", 60)}
	idx := BuildOccupancyIndex(monday, bookings, nil, nil)

	assert.True(t, idx.ResourceBusy(1, NewInterval("10:30", 60)))
	assert.False(t, idx.ResourceBusy(2, NewInterval("10:30", 60)))

	// Touching boundaries are not overlaps.
	assert.False(t, idx.ResourceBusy(1, NewInterval("11:00", 30)))
	assert.False(t, idx.ResourceBusy(1, NewInterval("09:30", 30)))
}

func TestOccupancyIndex_ActiveUnits(t *testing.T) {
	links := ResourceLinks{{ID: 1, ResourceIDs: []int64{1, 2}}}
	resources := []*Resource{
		{ID: 1, ActivityID: 10},
		{ID: 2, ActivityID: 10},
		{ID: 3, ActivityID: 10},
	}

	bookings := []*Booking{
		flexiBooking(1, []int64{1}, "10:00", 60),
		flexiBooking(2, []int64{3}, "10:00", 60),
	}
	idx := BuildOccupancyIndex(monday, bookings, nil, links)

	active := idx.ActiveUnits(NewInterval("10:00", 60), resources, links)
	assert.Len(t, active, 2)
	assert.Contains(t, active, StaffUnitID("link-1"))
	assert.Contains(t, active, StaffUnitID("resource-3"))

	// Restricting to a subset of resources hides foreign occupancy.
	active = idx.ActiveUnits(NewInterval("10:00", 60), resources[:2], links)
	assert.Len(t, active, 1)
	assert.Contains(t, active, StaffUnitID("link-1"))
}

func TestResourceLinks_StaffUnitOf(t *testing.T) {
	links := ResourceLinks{{ID: 7, ResourceIDs: []int64{4, 5}}}

	assert.Equal(t, StaffUnitID("link-7"), links.StaffUnitOf(4))
	assert.Equal(t, StaffUnitID("link-7"), links.StaffUnitOf(5))
	assert.Equal(t, StaffUnitID("resource-6"), links.StaffUnitOf(6))

	// No links at all: every resource is its own unit.
	assert.Equal(t, StaffUnitID("resource-1"), ResourceLinks(nil).StaffUnitOf(1))
}

func TestInterval_Overlaps(t *testing.T) {
	a := Interval{Start: 600, End: 660}

	assert.True(t, a.Overlaps(Interval{Start: 630, End: 690}))
	assert.True(t, a.Overlaps(Interval{Start: 540, End: 630}))
	assert.True(t, a.Overlaps(Interval{Start: 610, End: 620}))
	assert.False(t, a.Overlaps(Interval{Start: 660, End: 720}))
	assert.False(t, a.Overlaps(Interval{Start: 540, End: 600}))
}
