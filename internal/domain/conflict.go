package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// ConflictKind classifies a booking validation failure.
type ConflictKind string

const (
	ConflictVenueClosed           ConflictKind = "VenueClosed"
	ConflictAreaClosed            ConflictKind = "AreaClosed"
	ConflictResourceDoubleBooked  ConflictKind = "ResourceDoubleBooked"
	ConflictStaffCapacityExceeded ConflictKind = "StaffCapacityExceeded"
	ConflictMissingConfiguration  ConflictKind = "MissingConfiguration"
)

// Sentinel errors per conflict kind. ConflictError unwraps to one of these
// so callers can branch with errors.Is.
var (
	ErrVenueClosed           = errors.New("domain: venue is closed on this date")
	ErrAreaClosed            = errors.New("domain: area is closed or unstaffed for this time")
	ErrResourceDoubleBooked  = errors.New("domain: resource is already booked for this time")
	ErrStaffCapacityExceeded = errors.New("domain: staff capacity exceeded for this time")
	ErrMissingConfiguration  = errors.New("domain: activity or resource configuration is incomplete")
)

// ConflictError describes the first scheduling violation found for a
// proposed booking. All conflicts are recoverable, user-facing errors.
type ConflictError struct {
	Kind       ConflictKind
	Message    string
	ResourceID *int64
	AreaID     *int64
	Time       *types.TimeString
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap maps the conflict kind to its sentinel error.
func (e *ConflictError) Unwrap() error {
	switch e.Kind {
	case ConflictVenueClosed:
		return ErrVenueClosed
	case ConflictAreaClosed:
		return ErrAreaClosed
	case ConflictResourceDoubleBooked:
		return ErrResourceDoubleBooked
	case ConflictStaffCapacityExceeded:
		return ErrStaffCapacityExceeded
	case ConflictMissingConfiguration:
		return ErrMissingConfiguration
	default:
		return nil
	}
}

// ValidateBookingItems checks a proposed booking's items, in order, against
// the snapshot of other bookings, blocks and closures. On edit the booking
// itself must be excluded from others by the caller, so an unchanged
// booking always re-validates cleanly.
//
// Per item the rules run in a fixed order and validation short-circuits on
// the first violation:
//  1. the item's date must not match any closure;
//  2. the area's day record must be open and a single staff block must
//     cover the item's entire span;
//  3. no other booking or block may occupy any of the item's resources in
//     an overlapping interval;
//  4. the staff units already active in the area plus the units introduced
//     by this item must not exceed the covering block's capacity.
//
// Items of the proposed booking are each checked as a hypothetical addition
// against the existing snapshot; the write that follows a successful
// validation is a separate round-trip with no transactional coupling here —
// callers wanting stronger isolation wrap validate and write together.
func ValidateBookingItems(items []BookingItem, others []*Booking, blocks []*Block, closures []*Closure, catalog *Catalog, areas []*Area) *ConflictError {
	areasByID := make(map[int64]*Area, len(areas))
	for _, a := range areas {
		areasByID[a.ID] = a
	}

	// Occupancy indexes are per date; items of one booking may target
	// different dates.
	occByDate := make(map[string]*OccupancyIndex)
	occupancyFor := func(date time.Time) *OccupancyIndex {
		key := date.Format(DateFormat)
		if idx, ok := occByDate[key]; ok {
			return idx
		}
		idx := BuildOccupancyIndex(date, others, blocks, catalog.Links())
		occByDate[key] = idx
		return idx
	}

	for _, item := range items {
		if conflict := validateItem(item, closures, catalog, areasByID, occupancyFor(item.Date)); conflict != nil {
			return conflict
		}
	}
	return nil
}

func validateItem(item BookingItem, closures []*Closure, catalog *Catalog, areasByID map[int64]*Area, occ *OccupancyIndex) *ConflictError {
	itemIv := item.Interval()
	startTime := item.StartTime

	// 1. Closure check: the date is excluded venue-wide.
	for _, closure := range closures {
		if closure.Matches(item.Date) {
			return &ConflictError{
				Kind:    ConflictVenueClosed,
				Message: fmt.Sprintf("venue is closed on %s", item.Date.Format(DateFormat)),
				Time:    &startTime,
			}
		}
	}

	// Resolve the item's area through its activity.
	activity, ok := catalog.Activity(item.ActivityID)
	if !ok {
		return &ConflictError{
			Kind:    ConflictMissingConfiguration,
			Message: fmt.Sprintf("activity %d does not exist", item.ActivityID),
		}
	}
	area, ok := areasByID[activity.AreaID]
	if !ok {
		return &ConflictError{
			Kind:    ConflictMissingConfiguration,
			Message: fmt.Sprintf("activity %q has no assigned area", activity.Name),
		}
	}

	// 2. Operating-hours check: the day must be open and one staff block
	// must cover the item's full span, not just its start instant.
	day := area.DayScheduleFor(item.Date)
	capacity := day.StaffCountFor(itemIv)
	if !day.IsOpen || capacity == 0 {
		return &ConflictError{
			Kind:    ConflictAreaClosed,
			Message: fmt.Sprintf("area %q has no staff scheduled for %s on %s", area.Name, startTime, item.Date.Format(DateFormat)),
			AreaID:  &area.ID,
			Time:    &startTime,
		}
	}

	// 3. Direct double-booking check on every named resource.
	for _, resourceID := range item.ResourceIDs {
		if occ.ResourceBusy(resourceID, itemIv) {
			rid := resourceID
			return &ConflictError{
				Kind:       ConflictResourceDoubleBooked,
				Message:    fmt.Sprintf("resource %d is already occupied at %s", resourceID, startTime),
				ResourceID: &rid,
				AreaID:     &area.ID,
				Time:       &startTime,
			}
		}
	}

	// 4. Capacity check: units already active in the area plus units this
	// item introduces must fit the covering block's capacity.
	links := catalog.Links()
	active := occ.ActiveUnits(itemIv, catalog.ResourcesInArea(area.ID), links)

	for _, resourceID := range item.ResourceIDs {
		active[links.StaffUnitOf(resourceID)] = struct{}{}
	}

	if len(active) > capacity {
		return &ConflictError{
			Kind:    ConflictStaffCapacityExceeded,
			Message: fmt.Sprintf("area %q needs %d staff units at %s but only %d are scheduled", area.Name, len(active), startTime, capacity),
			AreaID:  &area.ID,
			Time:    &startTime,
		}
	}

	return nil
}
