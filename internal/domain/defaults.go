package domain

import (
	"time"

	"github.com/m04kA/barber-booking/pkg/ptr"
	"github.com/m04kA/barber-booking/pkg/types"
)

// DefaultWeeklySchedule Sun-Wed 09:00-20:00, Thu 08:00-21:00, Fri 08:00-15:00, Sat closed
func DefaultWeeklySchedule() WeeklySchedule {
	open := func(day time.Weekday, from, to string) DayWindow {
		return DayWindow{
			IsOpen:    true,
			OpenTime:  types.MustTimeString(from),
			CloseTime: types.MustTimeString(to),
			Label:     day.String(),
		}
	}

	return WeeklySchedule{
		time.Sunday:    open(time.Sunday, "09:00", "20:00"),
		time.Monday:    open(time.Monday, "09:00", "20:00"),
		time.Tuesday:   open(time.Tuesday, "09:00", "20:00"),
		time.Wednesday: open(time.Wednesday, "09:00", "20:00"),
		time.Thursday:  open(time.Thursday, "08:00", "21:00"),
		time.Friday:    open(time.Friday, "08:00", "15:00"),
		time.Saturday:  ClosedWindow(time.Saturday.String()),
	}
}

// DefaultOverrides special days shipped with the initial setup
func DefaultOverrides() []DateOverride {
	return []DateOverride{
		{
			Date:      time.Date(2024, time.April, 25, 0, 0, 0, 0, time.UTC),
			Name:      "Independence Day",
			IsWorkDay: false,
		},
		{
			Date:      time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC),
			Name:      "Special hours",
			IsWorkDay: true,
			OpenTime:  ptr.Ptr(types.MustTimeString("10:00")),
			CloseTime: ptr.Ptr(types.MustTimeString("14:00")),
		},
	}
}

// DefaultScheduleSettings is used when nothing is stored yet
func DefaultScheduleSettings() *ScheduleSettings {
	return &ScheduleSettings{
		Weekly:                 DefaultWeeklySchedule(),
		Overrides:              DefaultOverrides(),
		SlotGranularityMinutes: DefaultSlotGranularityMinutes,
	}
}
