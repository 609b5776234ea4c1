package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/availability"
	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/settings"
	"github.com/m04kA/barber-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type loaderFunc func(ctx context.Context) (*availability.Schedule, error)

func (f loaderFunc) LoadSchedule(ctx context.Context) (*availability.Schedule, error) { return f(ctx) }

type recordingMetrics struct {
	window string
	count  int
}

func (m *recordingMetrics) ObserveSlotsGenerated(window string, count int) {
	m.window, m.count = window, count
}

func defaultLoader(t *testing.T) ScheduleLoader {
	t.Helper()
	schedule, err := availability.FromSettings(domain.DefaultScheduleSettings())
	require.NoError(t, err)
	return loaderFunc(func(context.Context) (*availability.Schedule, error) { return schedule, nil })
}

func newUseCase(loader ScheduleLoader, m Metrics, notice int, now time.Time) *UseCase {
	uc := NewUseCase(loader, m, Options{MinBookingNoticeMinutes: notice}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

// понедельник 19 октября 2026, 07:00
var mondayMorning = time.Date(2026, time.October, 19, 7, 0, 0, 0, time.UTC)

func TestExecute_Sunday(t *testing.T) {
	m := &recordingMetrics{}
	uc := newUseCase(defaultLoader(t), m, 0, mondayMorning)

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2026, time.October, 25, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.True(t, resp.Window.IsOpen)
	assert.Equal(t, "Sunday", resp.Window.Label)
	assert.Equal(t, 30, resp.Granularity)
	require.Len(t, resp.Slots, 22)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("19:30"), resp.Slots[21])

	assert.Equal(t, "open", m.window)
	assert.Equal(t, 22, m.count)
}

func TestExecute_ClosedSaturday(t *testing.T) {
	m := &recordingMetrics{}
	uc := newUseCase(defaultLoader(t), m, 0, mondayMorning)

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2026, time.October, 24, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.False(t, resp.Window.IsOpen)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, "closed", m.window)
}

func TestExecute_TodayWithNotice(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		notice    int
		wantFirst types.TimeString
		wantLen   int
	}{
		{name: "before opening", now: mondayMorning, notice: 0, wantFirst: "09:00", wantLen: 22},
		{name: "mid day", now: mondayMorning.Add(5*time.Hour + 10*time.Minute), notice: 0, wantFirst: "12:30", wantLen: 15},
		{name: "mid day with notice", now: mondayMorning.Add(5*time.Hour + 10*time.Minute), notice: 60, wantFirst: "13:30", wantLen: 13},
		{name: "exactly on slot", now: mondayMorning.Add(3 * time.Hour), notice: 0, wantFirst: "10:00", wantLen: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(defaultLoader(t), &recordingMetrics{}, tt.notice, tt.now)

			resp, err := uc.Execute(context.Background(), &Request{Date: tt.now})
			require.NoError(t, err)
			require.Len(t, resp.Slots, tt.wantLen)
			assert.Equal(t, tt.wantFirst, resp.Slots[0])
		})
	}
}

func TestExecute_AfterClosingToday(t *testing.T) {
	uc := newUseCase(defaultLoader(t), &recordingMetrics{}, 0, mondayMorning.Add(13*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{Date: mondayMorning})
	require.NoError(t, err)
	assert.True(t, resp.Window.IsOpen)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase(defaultLoader(t), &recordingMetrics{}, 0, mondayMorning)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: mondayMorning.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)

	broken := loaderFunc(func(context.Context) (*availability.Schedule, error) {
		return nil, fmt.Errorf("%w: monday: open after close", settings.ErrStoredScheduleInvalid)
	})
	_, err = newUseCase(broken, &recordingMetrics{}, 0, mondayMorning).
		Execute(context.Background(), &Request{Date: mondayMorning})
	assert.ErrorIs(t, err, ErrScheduleUnavailable)

	failing := loaderFunc(func(context.Context) (*availability.Schedule, error) {
		return nil, errors.New("db is down")
	})
	_, err = newUseCase(failing, &recordingMetrics{}, 0, mondayMorning).
		Execute(context.Background(), &Request{Date: mondayMorning})
	assert.ErrorIs(t, err, ErrInternal)
}
