package domain

// Default configuration values
const (
	DefaultSlotGranularityMinutes  = 30
	DefaultMinBookingNoticeMinutes = 0
	DefaultPeopleCount             = 1
)

// Business validation constants
const (
	MinSlotGranularityMinutes = 5
	MaxSlotGranularityMinutes = 480 // 8 hours
	MinPeopleCount            = 1
	MaxPeopleCount            = 5
	MaxNameLength             = 100
	MaxContactInfoLength      = 100
	MaxSpecialDayNameLength   = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
