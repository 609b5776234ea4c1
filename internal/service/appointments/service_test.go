package appointments

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barber-booking/internal/infra/storage/appointment"
	"github.com/m04kA/barber-booking/internal/service/appointments/models"
	"github.com/m04kA/barber-booking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() *Service {
	return NewService(appointmentRepo.NewRepository(appointmentRepo.Seed()), nopLogger{})
}

func TestService_List(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	all, err := svc.List(ctx, &models.ListAppointmentsRequest{Status: ptr.Ptr("all")})
	require.NoError(t, err)
	assert.Equal(t, 8, all.Total)

	pending, err := svc.List(ctx, &models.ListAppointmentsRequest{Status: ptr.Ptr("Pending"), Search: "levi"})
	require.NoError(t, err)
	require.Equal(t, 2, pending.Total)
	assert.Equal(t, "Yael Levi", pending.Appointments[0].Name)
	assert.Equal(t, "2024-03-15", pending.Appointments[0].Date)
	assert.Equal(t, "11:00", pending.Appointments[0].Time)

	_, err = svc.List(ctx, &models.ListAppointmentsRequest{Status: ptr.Ptr("cancelled")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	resp, err := svc.UpdateStatus(ctx, 2, &models.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)

	_, err = svc.UpdateStatus(ctx, 2, &models.UpdateStatusRequest{Status: "rejected"})
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	_, err = svc.UpdateStatus(ctx, 4, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(ctx, 4, &models.UpdateStatusRequest{Status: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(ctx, 404, &models.UpdateStatusRequest{Status: "rejected"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Dashboard(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, 7, &models.UpdateStatusRequest{Status: "rejected"})
	require.NoError(t, err)

	now := time.Date(2024, time.March, 16, 9, 0, 0, 0, time.UTC)
	resp, err := svc.Dashboard(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.PendingCount)
	assert.Equal(t, 5, resp.ApprovedCount)
	assert.Equal(t, 1, resp.RejectedCount)
	assert.Equal(t, 2, resp.TodayCount)
	require.Len(t, resp.PendingRequests, 2)
	// 15 марта уже прошло
	require.Len(t, resp.UpcomingApproved, 3)
	assert.Equal(t, int64(5), resp.UpcomingApproved[0].ID)
}

func TestService_Dashboard_Empty(t *testing.T) {
	svc := NewService(appointmentRepo.NewRepository([]domain.Appointment{}), nopLogger{})

	resp, err := svc.Dashboard(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, resp.PendingCount)
	assert.NotNil(t, resp.PendingRequests)
}

// barrierRepo держит GetByID, пока оба конкурирующих запроса не прочитают заявку
type barrierRepo struct {
	*appointmentRepo.Repository
	reads sync.WaitGroup
}

func (r *barrierRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, err := r.Repository.GetByID(ctx, id)
	r.reads.Done()
	r.reads.Wait()
	return a, err
}

func TestService_UpdateStatus_ConcurrentDecisions(t *testing.T) {
	repo := &barrierRepo{Repository: appointmentRepo.NewRepository(appointmentRepo.Seed())}
	repo.reads.Add(2)
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	statuses := []string{"approved", "rejected"}
	errs := make([]error, len(statuses))

	var wg sync.WaitGroup
	for i, status := range statuses {
		wg.Add(1)
		go func(i int, status string) {
			defer wg.Done()
			_, errs[i] = svc.UpdateStatus(ctx, 2, &models.UpdateStatusRequest{Status: status})
		}(i, status)
	}
	wg.Wait()

	var decided int
	for _, err := range errs {
		if err == nil {
			decided++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyDecided)
	}
	assert.Equal(t, 1, decided)
}

func TestService_Dashboard_TimezoneBehindUTC(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	repo := appointmentRepo.NewRepository([]domain.Appointment{
		{ID: 1, Name: "Dana Katz", Date: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
			Time: "15:00", PeopleCount: 1, Status: domain.StatusApproved},
		{ID: 2, Name: "Eli Ben", Date: time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC),
			Time: "15:00", PeopleCount: 1, Status: domain.StatusApproved},
	})
	svc := NewService(repo, nopLogger{})

	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, newYork)
	resp, err := svc.Dashboard(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TodayCount)
	require.Len(t, resp.UpcomingApproved, 1)
	assert.Equal(t, int64(1), resp.UpcomingApproved[0].ID)
}
