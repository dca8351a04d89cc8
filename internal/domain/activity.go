package domain

// ActivityType distinguishes the two scheduling models.
type ActivityType string

const (
	// ActivityFixedTime activities are bookable only at canonical start
	// times with an implicit one-hour duration.
	ActivityFixedTime ActivityType = "Fixed Time"

	// ActivityFlexiTime activities accept any start time and a duration
	// that is a positive multiple of FlexiStepMinutes.
	ActivityFlexiTime ActivityType = "Flexi Time"
)

// Activity groups bookable resources and ties them to exactly one area.
type Activity struct {
	ID     int64
	Name   string
	Type   ActivityType
	AreaID int64
	Price  float64
}

// IsFixedTime reports whether the activity uses canonical start times.
func (a *Activity) IsFixedTime() bool {
	return a.Type == ActivityFixedTime
}

// IsFlexiTime reports whether the activity uses free-form durations.
func (a *Activity) IsFlexiTime() bool {
	return a.Type == ActivityFlexiTime
}

// ActivityTiming is the configured timing model for activities: the implied
// duration of a fixed-time slot and the step flexi-time durations must be a
// multiple of. It comes from configuration, not from hardcoded literals.
type ActivityTiming struct {
	FixedSlotMinutes int
	FlexiStepMinutes int
}

// DefaultActivityTiming returns the reference configuration: one-hour fixed
// slots and 15-minute flexi steps.
func DefaultActivityTiming() ActivityTiming {
	return ActivityTiming{
		FixedSlotMinutes: FixedSlotDurationMinutes,
		FlexiStepMinutes: FlexiStepMinutes,
	}
}

// ValidItemDuration reports whether a booking item duration is legal for
// the activity's scheduling model.
func (t ActivityTiming) ValidItemDuration(a *Activity, minutes int) bool {
	if a.IsFixedTime() {
		return minutes == t.FixedSlotMinutes
	}
	return minutes > 0 && minutes%t.FlexiStepMinutes == 0
}

// ItemPrice returns the price of one booking item for a single group member.
// Fixed-time activities charge a flat price per slot; flexi-time activities
// charge the price per flexi step, scaled by the booked duration.
func (t ActivityTiming) ItemPrice(a *Activity, minutes int) float64 {
	if a.IsFixedTime() {
		return a.Price
	}
	return a.Price * float64(minutes/t.FlexiStepMinutes)
}
