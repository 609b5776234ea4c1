package validate_selection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/availability"
	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type staticLoader struct {
	schedule *availability.Schedule
	err      error
}

func (s staticLoader) LoadSchedule(context.Context) (*availability.Schedule, error) {
	return s.schedule, s.err
}

type countingMetrics map[string]int

func (m countingMetrics) ObserveSelectionVerdict(result string) { m[result]++ }

var (
	today    = time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	thursday = time.Date(2026, time.October, 22, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, time.October, 24, 0, 0, 0, 0, time.UTC)
)

func newUseCase(t *testing.T, m Metrics) *UseCase {
	t.Helper()
	schedule, err := availability.FromSettings(domain.DefaultScheduleSettings())
	require.NoError(t, err)

	uc := NewUseCase(staticLoader{schedule: schedule}, m, nil, nopLogger{})
	uc.timeProvider = fixedTime{now: today}
	return uc
}

func TestExecute_Verdicts(t *testing.T) {
	m := countingMetrics{}
	uc := newUseCase(t, m)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{Date: thursday, Time: "14:15"})
	require.NoError(t, err)
	assert.True(t, resp.Complete)
	assert.Equal(t, types.TimeString("08:00"), resp.Window.OpenTime)

	resp, err = uc.Execute(ctx, &Request{Date: saturday, Time: "10:00"})
	var closed *availability.ClosedDayError
	require.True(t, errors.As(err, &closed))
	assert.Equal(t, "closed on Saturdays", closed.Error())
	require.NotNil(t, resp)
	assert.False(t, resp.Window.IsOpen)

	_, err = uc.Execute(ctx, &Request{Date: thursday, Time: "07:30"})
	var outside *availability.OutsideHoursError
	require.True(t, errors.As(err, &outside))
	assert.Equal(t, types.TimeString("21:00"), outside.CloseTime)

	_, err = uc.Execute(ctx, &Request{Date: thursday, Time: "noon"})
	assert.ErrorIs(t, err, availability.ErrInvalidSelection)

	assert.Equal(t, 1, m[verdictOK])
	assert.Equal(t, 1, m[verdictClosedDay])
	assert.Equal(t, 1, m[verdictOutsideHours])
	assert.Equal(t, 1, m[verdictMalformed])
}

func TestExecute_PartialSelection(t *testing.T) {
	m := countingMetrics{}
	uc := newUseCase(t, m)

	resp, err := uc.Execute(context.Background(), &Request{Date: saturday})
	require.NoError(t, err)
	assert.False(t, resp.Complete)
	assert.False(t, resp.Window.IsOpen, "window is still reported for the chosen day")

	resp, err = uc.Execute(context.Background(), &Request{Time: "23:00"})
	require.NoError(t, err)
	assert.False(t, resp.Complete)

	assert.Equal(t, 2, m[verdictIncomplete])
}

func TestExecute_PastDate(t *testing.T) {
	m := countingMetrics{}
	uc := newUseCase(t, m)

	_, err := uc.Execute(context.Background(), &Request{Date: today.AddDate(0, 0, -1), Time: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, 1, m[verdictPastDate])

	_, err = uc.Execute(context.Background(), &Request{Date: today, Time: "10:00"})
	assert.NoError(t, err, "today is bookable")
}

func TestExecute_LoaderError(t *testing.T) {
	uc := NewUseCase(staticLoader{err: errors.New("db down")}, countingMetrics{}, time.UTC, nopLogger{})
	uc.timeProvider = fixedTime{now: today}

	_, err := uc.Execute(context.Background(), &Request{Date: thursday, Time: "10:00"})
	assert.ErrorIs(t, err, ErrInternal)
}
