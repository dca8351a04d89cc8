package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	StatusBooked    BookingStatus = "Booked"
	StatusCheckedIn BookingStatus = "Checked In"
	StatusDone      BookingStatus = "Done"
)

// BookingStatuses is the status cycle in order. Status advances round-robin
// on manual trigger; it is a linear cycle, not a strict workflow.
var BookingStatuses = []BookingStatus{StatusBooked, StatusCheckedIn, StatusDone}

// Next returns the status that follows s in the cycle, wrapping around.
func (s BookingStatus) Next() BookingStatus {
	for i, status := range BookingStatuses {
		if status == s {
			return BookingStatuses[(i+1)%len(BookingStatuses)]
		}
	}
	return StatusBooked
}

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	for _, status := range BookingStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// BookingItem is one resource/time reservation inside a booking. A single
// item may span multiple resources (co-booked resources reserved together
// for one party). Items never cross midnight: Date plus StartTime and
// DurationMinutes fully determine the occupied window.
type BookingItem struct {
	ActivityID      int64              `json:"activityId"`
	ResourceIDs     []int64            `json:"resourceIds"`
	Date            time.Time          `json:"date"`
	StartTime       types.TimeString   `json:"startTime"`
	DurationMinutes int                `json:"durationMinutes"`
}

// Interval returns the item's occupied window as a minute interval.
func (i BookingItem) Interval() Interval {
	return NewInterval(i.StartTime, i.DurationMinutes)
}

// OnDate reports whether the item occupies the given calendar date.
func (i BookingItem) OnDate(date time.Time) bool {
	return sameDay(i.Date, date)
}

// Booking is a customer reservation of one or more items, possibly spanning
// multiple activities.
type Booking struct {
	ID           int64
	CustomerID   *int64
	CustomerName string
	GroupSize    int
	Status       BookingStatus
	TotalPrice   float64
	Notes        *string
	Items        []BookingItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWalkIn reports whether the booking has no identified customer.
func (b *Booking) IsWalkIn() bool {
	return b.CustomerID == nil && b.CustomerName == WalkInCustomerName
}

// HasItemsOn reports whether any item of the booking occupies the date.
func (b *Booking) HasItemsOn(date time.Time) bool {
	for _, item := range b.Items {
		if item.OnDate(date) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
