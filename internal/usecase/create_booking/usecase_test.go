package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/availability"
	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/infra/storage/appointment"
	"github.com/m04kA/barber-booking/internal/service/settings"
	"github.com/m04kA/barber-booking/internal/wizard"
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

type passThroughTx struct{ calls int }

func (p *passThroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type countingMetrics map[string]int

func (m countingMetrics) ObserveBookingRequest(status string) { m[status]++ }

var (
	// понедельник, 12:10
	now      = time.Date(2026, time.October, 19, 12, 10, 0, 0, time.UTC)
	thursday = time.Date(2026, time.October, 22, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, time.October, 24, 0, 0, 0, 0, time.UTC)
)

func details() wizard.Details {
	return wizard.Details{
		Name:               " Ronit Avraham ",
		PeopleCount:        2,
		NotificationMethod: domain.NotifyEmail,
		ContactInfo:        "ronit@example.com",
	}
}

type fixture struct {
	uc      *UseCase
	repo    *appointment.Repository
	tx      *passThroughTx
	metrics countingMetrics
}

func newFixture(t *testing.T, loader ScheduleLoader, notice int) *fixture {
	t.Helper()
	f := &fixture{
		repo:    appointment.NewRepository(nil),
		tx:      &passThroughTx{},
		metrics: countingMetrics{},
	}
	f.uc = NewUseCase(f.repo, loader, f.tx, f.metrics, Options{MinBookingNoticeMinutes: notice}, nopLogger{})
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func defaultLoader(t *testing.T) ScheduleLoader {
	t.Helper()
	s, err := availability.FromSettings(domain.DefaultScheduleSettings())
	require.NoError(t, err)
	return staticLoader{schedule: s}
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	f := newFixture(t, defaultLoader(t), 0)

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:    thursday.Add(15 * time.Hour),
		Time:    "08:00",
		Details: details(),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Ronit Avraham", resp.Name)
	assert.Equal(t, thursday, resp.Date)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, DefaultService, resp.Service)
	assert.Equal(t, 2, resp.PeopleCount)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.metrics[resultCreated])

	stored, err := f.repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsPending())
}

func TestExecute_RejectsSelection(t *testing.T) {
	f := newFixture(t, defaultLoader(t), 0)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, &Request{Date: saturday, Time: "10:00", Details: details()})
	var closed *availability.ClosedDayError
	require.True(t, errors.As(err, &closed))
	assert.Equal(t, "closed on Saturdays", closed.Error())

	_, err = f.uc.Execute(ctx, &Request{Date: thursday, Time: "21:30", Details: details()})
	assert.ErrorIs(t, err, availability.ErrOutsideWorkingHours)

	list, err := f.repo.List(ctx, domain.AppointmentsFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 2, f.metrics[resultRejected])
}

func TestExecute_InputErrors(t *testing.T) {
	f := newFixture(t, defaultLoader(t), 0)
	ctx := context.Background()

	badDetails := details()
	badDetails.ContactInfo = "050-1234567"

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "nil request", req: nil, wantErr: ErrInvalidInput},
		{name: "missing time", req: &Request{Date: thursday, Details: details()}, wantErr: ErrInvalidInput},
		{name: "malformed time", req: &Request{Date: thursday, Time: "10h", Details: details()}, wantErr: ErrInvalidInput},
		{name: "phone for email", req: &Request{Date: thursday, Time: "10:00", Details: badDetails}, wantErr: ErrInvalidInput},
		{name: "past date", req: &Request{Date: now.AddDate(0, 0, -1), Time: "10:00", Details: details()}, wantErr: ErrInvalidDate},
		{name: "earlier today", req: &Request{Date: now, Time: "12:00", Details: details()}, wantErr: ErrTooLateToBook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, f.tx.calls)
}

func TestExecute_NoticeForToday(t *testing.T) {
	f := newFixture(t, defaultLoader(t), 60)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, &Request{Date: now, Time: "13:00", Details: details()})
	assert.ErrorIs(t, err, ErrTooLateToBook)

	resp, err := f.uc.Execute(ctx, &Request{Date: now, Time: "13:30", Details: details(), Service: "Beard trim"})
	require.NoError(t, err)
	assert.Equal(t, "Beard trim", resp.Service)
}

func TestExecute_ScheduleErrors(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, staticLoader{err: settings.ErrStoredScheduleInvalid}, 0)
	_, err := f.uc.Execute(ctx, &Request{Date: thursday, Time: "10:00", Details: details()})
	assert.ErrorIs(t, err, ErrScheduleUnavailable)

	f = newFixture(t, staticLoader{err: errors.New("connection refused")}, 0)
	_, err = f.uc.Execute(ctx, &Request{Date: thursday, Time: "10:00", Details: details()})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, f.metrics[resultFailed])
}
