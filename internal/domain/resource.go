package domain

import "fmt"

// Resource is a physical bookable unit (a lane, a table, a room).
// It belongs to exactly one activity.
type Resource struct {
	ID           int64
	ActivityID   int64
	Name         string
	Abbreviation string
	Capacity     int
}

// StaffUnitID identifies the capacity-consuming identity of a resource:
// the link group it belongs to, or the resource itself. One unit of area
// staff capacity is consumed per active staff unit per interval.
type StaffUnitID string

// ResourceLink declares that a set of resources shares a single staffing
// allocation: booking any member consumes one unit of the area's staff
// capacity on behalf of the whole group.
type ResourceLink struct {
	ID          int64
	ResourceIDs []int64
}

// Contains reports whether resourceID is a member of the link group.
func (l *ResourceLink) Contains(resourceID int64) bool {
	for _, id := range l.ResourceIDs {
		if id == resourceID {
			return true
		}
	}
	return false
}

// ResourceLinks is the full set of link groups for the venue.
type ResourceLinks []*ResourceLink

// StaffUnitOf resolves a resource to its staff unit: the id of the link
// group containing it if one exists, else the resource's own id. Total
// over all resource ids, never fails.
func (ls ResourceLinks) StaffUnitOf(resourceID int64) StaffUnitID {
	for _, link := range ls {
		if link.Contains(resourceID) {
			return StaffUnitID(fmt.Sprintf("link-%d", link.ID))
		}
	}
	return StaffUnitID(fmt.Sprintf("resource-%d", resourceID))
}
