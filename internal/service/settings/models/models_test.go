package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/pkg/ptr"
	"github.com/m04kA/barber-booking/pkg/types"
)

func TestUpdateSettingsRequest_ToDomainSettings(t *testing.T) {
	req := &UpdateSettingsRequest{
		WeeklyHours: []DayHours{
			{Weekday: 0, IsOpen: true, OpenTime: ptr.Ptr("09:00:00"), CloseTime: ptr.Ptr("20:00")},
		},
		SlotGranularityMinutes: 15,
	}

	settings, err := req.ToDomainSettings()
	require.NoError(t, err)
	assert.Equal(t, 15, settings.SlotGranularityMinutes)
	assert.True(t, settings.Weekly[time.Sunday].IsOpen)
	assert.Equal(t, types.TimeString("09:00"), settings.Weekly[time.Sunday].OpenTime)
	assert.False(t, settings.Weekly[time.Monday].IsOpen, "missing weekdays are closed")
	assert.Empty(t, settings.Overrides)
}

func TestUpdateSettingsRequest_ToDomainSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		hours   []DayHours
		wantErr error
	}{
		{
			name: "duplicate weekday",
			hours: []DayHours{
				{Weekday: 4, IsOpen: true, OpenTime: ptr.Ptr("08:00"), CloseTime: ptr.Ptr("21:00")},
				{Weekday: 4},
			},
			wantErr: ErrDuplicateWeekday,
		},
		{
			name:    "weekday out of range",
			hours:   []DayHours{{Weekday: -1}},
			wantErr: ErrInvalidWeekday,
		},
		{
			name: "time with trailing garbage",
			hours: []DayHours{
				{Weekday: 1, IsOpen: true, OpenTime: ptr.Ptr("09:00xyz"), CloseTime: ptr.Ptr("20:00")},
			},
			wantErr: ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &UpdateSettingsRequest{WeeklyHours: tt.hours, SlotGranularityMinutes: 30}
			_, err := req.ToDomainSettings()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
