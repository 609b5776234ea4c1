package domain

import (
	"time"

	"github.com/m04kA/barber-booking/pkg/types"
)

// DayWindow working window of a single day.
// When IsOpen is false OpenTime/CloseTime are ignored
type DayWindow struct {
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
	// Label is shown to the user: weekday name or special day name
	Label string
	// FromOverride is true when the window comes from a special day
	FromOverride bool
}

// ClosedWindow returns a closed window with a label
func ClosedWindow(label string) DayWindow {
	return DayWindow{IsOpen: false, Label: label}
}

// WeeklySchedule working windows indexed by time.Weekday (0 = Sunday ... 6 = Saturday)
type WeeklySchedule [7]DayWindow

// ForWeekday returns the window for the given day of week
func (w WeeklySchedule) ForWeekday(day time.Weekday) DayWindow {
	if day < time.Sunday || day > time.Saturday {
		return ClosedWindow(day.String())
	}
	return w[day]
}

// DateOverride special day that takes precedence over the weekly schedule
type DateOverride struct {
	ID        int64
	Date      time.Time // date only, time part is ignored
	Name      string
	IsWorkDay bool
	OpenTime  *types.TimeString // required when IsWorkDay
	CloseTime *types.TimeString // required when IsWorkDay
	CreatedAt time.Time
}

// DateKey returns the YYYY-MM-DD key of the override
func (o *DateOverride) DateKey() string {
	return DateKey(o.Date)
}

// Window derives a DayWindow from the override
func (o *DateOverride) Window() DayWindow {
	if !o.IsWorkDay || o.OpenTime == nil || o.CloseTime == nil {
		return DayWindow{IsOpen: false, Label: o.Name, FromOverride: true}
	}
	return DayWindow{
		IsOpen:       true,
		OpenTime:     *o.OpenTime,
		CloseTime:    *o.CloseTime,
		Label:        o.Name,
		FromOverride: true,
	}
}

// ScheduleSettings booking configuration edited by the admin
type ScheduleSettings struct {
	Weekly                 WeeklySchedule
	Overrides              []DateOverride
	SlotGranularityMinutes int
	UpdatedAt              time.Time
}

// DateKey formats a date as YYYY-MM-DD
func DateKey(date time.Time) string {
	return date.Format(DateFormat)
}

// DateOnly drops the time part keeping the location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
