package domain

import "time"

// OccupancyIndex holds the time intervals currently occupied on a single
// date, per resource and per staff unit, built from bookings and manual
// blocks. Intervals are kept as recorded; overlapping entries are not
// merged — the index is only used for membership and overlap tests.
type OccupancyIndex struct {
	ByResource map[int64][]Interval
	ByUnit     map[StaffUnitID][]Interval
}

// BuildOccupancyIndex scans every booking item and block occupying the
// requested date and records its interval against each resource it names
// and against the staff unit each of those resources maps to. Multiple
// resources in one item may map to multiple distinct staff units
// (co-booking across link groups); each unit accumulates independently.
func BuildOccupancyIndex(date time.Time, bookings []*Booking, blocks []*Block, links ResourceLinks) *OccupancyIndex {
	idx := &OccupancyIndex{
		ByResource: make(map[int64][]Interval),
		ByUnit:     make(map[StaffUnitID][]Interval),
	}

	for _, booking := range bookings {
		for _, item := range booking.Items {
			if !item.OnDate(date) {
				continue
			}
			iv := item.Interval()
			for _, resourceID := range item.ResourceIDs {
				idx.record(resourceID, iv, links)
			}
		}
	}

	for _, block := range blocks {
		if !block.OnDate(date) {
			continue
		}
		idx.record(block.ResourceID, block.Interval(), links)
	}

	return idx
}

func (idx *OccupancyIndex) record(resourceID int64, iv Interval, links ResourceLinks) {
	idx.ByResource[resourceID] = append(idx.ByResource[resourceID], iv)
	unit := links.StaffUnitOf(resourceID)
	idx.ByUnit[unit] = append(idx.ByUnit[unit], iv)
}

// ResourceBusy reports whether the resource has any recorded occupancy
// overlapping iv.
func (idx *OccupancyIndex) ResourceBusy(resourceID int64, iv Interval) bool {
	for _, occupied := range idx.ByResource[resourceID] {
		if occupied.Overlaps(iv) {
			return true
		}
	}
	return false
}

// ActiveUnits returns the staff units with at least one occupied interval
// overlapping iv, restricted to the given resources (the resources of one
// area). Unit activity is derived from the resources' own occupancy so a
// unit booked only through another area's resources does not count here.
func (idx *OccupancyIndex) ActiveUnits(iv Interval, resources []*Resource, links ResourceLinks) map[StaffUnitID]struct{} {
	active := make(map[StaffUnitID]struct{})
	for _, r := range resources {
		if idx.ResourceBusy(r.ID, iv) {
			active[links.StaffUnitOf(r.ID)] = struct{}{}
		}
	}
	return active
}
