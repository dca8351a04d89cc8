package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// UnavailableSlot is a derived (not directly booked) time range on a
// resource that is non-bookable because staffing capacity is exhausted or
// the area is closed. The presentation layer unions these with direct
// booking/block occupancy.
type UnavailableSlot struct {
	ResourceID      int64
	StartTime       types.TimeString
	DurationMinutes int
}

// ComputeUnavailability walks the fixed-width interval grid for the date
// and determines, per interval and per area, whether staffing capacity is
// exhausted, and if so which resources become unavailable.
//
// For each interval the capacity is the count of the staff block that fully
// contains it (see DaySchedule.StaffCountFor). The active units are the
// staff units with occupancy overlapping the interval, restricted to the
// area's own resources. When active units meet or exceed capacity, every
// resource of the area whose unit is not among the active ones is marked
// unavailable; a resource whose unit is already active is the one consuming
// the capacity and stays bookable through its own occupancy instead.
// Resources with direct occupancy in the interval are never marked — their
// busy state is rendered from the booking itself.
//
// A closed day record makes every resource of the area unavailable for the
// whole operating window.
//
// Adjacent unavailable intervals for the same resource are merged into
// single slots, ordered by resource id and start time. The function is a
// pure computation over the snapshot: identical inputs yield identical
// output.
func ComputeUnavailability(date time.Time, grid ScheduleGrid, catalog *Catalog, areas []*Area, occ *OccupancyIndex) []UnavailableSlot {
	intervals := grid.Intervals()
	links := catalog.Links()

	type mark struct {
		resourceID int64
		iv         Interval
	}
	var marks []mark

	for _, area := range areas {
		resources := catalog.ResourcesInArea(area.ID)
		if len(resources) == 0 {
			continue
		}

		day := area.DayScheduleFor(date)
		if !day.IsOpen {
			span := grid.Span()
			for _, r := range resources {
				marks = append(marks, mark{resourceID: r.ID, iv: span})
			}
			continue
		}

		for _, iv := range intervals {
			capacity := day.StaffCountFor(iv)
			active := occ.ActiveUnits(iv, resources, links)

			if len(active) < capacity {
				continue
			}

			for _, r := range resources {
				if occ.ResourceBusy(r.ID, iv) {
					continue
				}
				if _, ok := active[links.StaffUnitOf(r.ID)]; ok {
					continue
				}
				marks = append(marks, mark{resourceID: r.ID, iv: iv})
			}
		}
	}

	sort.Slice(marks, func(i, j int) bool {
		if marks[i].resourceID != marks[j].resourceID {
			return marks[i].resourceID < marks[j].resourceID
		}
		return marks[i].iv.Start < marks[j].iv.Start
	})

	// Merge contiguous marks per resource into consolidated slots.
	slots := make([]UnavailableSlot, 0, len(marks))
	var current *UnavailableSlot
	var currentEnd int

	for _, m := range marks {
		if current != nil && current.ResourceID == m.resourceID && currentEnd == m.iv.Start {
			current.DurationMinutes += m.iv.Duration()
			currentEnd = m.iv.End
			continue
		}
		if current != nil {
			slots = append(slots, *current)
		}
		current = &UnavailableSlot{
			ResourceID:      m.resourceID,
			StartTime:       m.iv.StartTime(),
			DurationMinutes: m.iv.Duration(),
		}
		currentEnd = m.iv.End
	}
	if current != nil {
		slots = append(slots, *current)
	}

	return slots
}
