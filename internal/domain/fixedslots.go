package domain

import (
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// FixedSlotCandidates returns the bookable canonical start times for a
// fixed-time resource on a date. The candidate list comes from the
// schedule override for (resource, date) when one exists, else from the
// area day record's fixed time slots. Each candidate implies an occupied
// window of slotMinutes; candidates already overlapping a booking or block
// on that resource are filtered out, independent of staffing capacity.
func FixedSlotCandidates(resourceID int64, day DaySchedule, override *ScheduleOverride, occ *OccupancyIndex, slotMinutes int) []types.TimeString {
	source := day.FixedTimeSlots
	if override != nil {
		source = override.FixedTimeSlots
	}

	candidates := make([]types.TimeString, 0, len(source))
	for _, start := range source {
		iv := NewInterval(start, slotMinutes)
		if occ.ResourceBusy(resourceID, iv) {
			continue
		}
		candidates = append(candidates, start)
	}
	return candidates
}
