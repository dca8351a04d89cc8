package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default timeline grid. The running configuration comes from config.toml;
// these values back the zero-config case and tests.
const (
	DefaultOpenTime        = "08:00"
	DefaultCloseTime       = "23:00"
	DefaultSlotStepMinutes = 15
)

// Activity timing rules
const (
	FixedSlotDurationMinutes = 60 // fixed-time activities always occupy one hour
	FlexiStepMinutes         = 15 // flexi-time durations are multiples of this
)

// WalkInCustomerName is the customer name recorded for anonymous bookings.
const WalkInCustomerName = "Walk-In"

// Business validation constants
const (
	MinGroupSize         = 1
	MaxGroupSize         = 100
	MaxNotesLength       = 500
	MaxBlockReasonLength = 200
)
