package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/ptr"
)

func TestRepository_List(t *testing.T) {
	repo := NewRepository(Seed())
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  domain.AppointmentsFilter
		wantIDs []int64
	}{
		{name: "all", filter: domain.AppointmentsFilter{}, wantIDs: []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "pending tab", filter: domain.AppointmentsFilter{Status: ptr.Ptr(domain.StatusPending)}, wantIDs: []int64{2, 4, 7}},
		{name: "rejected tab", filter: domain.AppointmentsFilter{Status: ptr.Ptr(domain.StatusRejected)}, wantIDs: []int64{}},
		{name: "search by name", filter: domain.AppointmentsFilter{Search: "cohen"}, wantIDs: []int64{1, 5, 8}},
		{name: "search by phone", filter: domain.AppointmentsFilter{Search: "052-"}, wantIDs: []int64{2, 7}},
		{name: "search by service", filter: domain.AppointmentsFilter{Search: "coloring"}, wantIDs: []int64{2, 6}},
		{
			name:    "tab and search",
			filter:  domain.AppointmentsFilter{Status: ptr.Ptr(domain.StatusApproved), Search: "men's haircut"},
			wantIDs: []int64{1, 5, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]int64, 0, len(list))
			for _, a := range list {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRepository_CreateAndUpdate(t *testing.T) {
	repo := NewRepository(Seed())
	fixed := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Appointment{
		Name:        "Dana Katz",
		Date:        time.Date(2026, time.October, 22, 0, 0, 0, 0, time.UTC),
		Time:        "10:30",
		PeopleCount: 1,
		Status:      domain.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, fixed, created.CreatedAt)

	// копия не влияет на хранилище
	created.Name = "changed"
	stored, err := repo.GetByID(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Dana Katz", stored.Name)

	updated, err := repo.UpdateStatus(ctx, 9, domain.StatusPending, domain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)

	_, err = repo.UpdateStatus(ctx, 9, domain.StatusPending, domain.StatusRejected)
	assert.ErrorIs(t, err, ErrStatusConflict)
	stored, err = repo.GetByID(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, stored.Status)

	_, err = repo.UpdateStatus(ctx, 100, domain.StatusPending, domain.StatusApproved)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = repo.Create(ctx, &domain.Appointment{Name: "No date"})
	assert.ErrorIs(t, err, ErrInvalidAppointment)
}

func TestRepository_ConcurrentCreate(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, &domain.Appointment{
				Date: time.Date(2026, time.October, 22, 0, 0, 0, 0, time.UTC),
				Time: "09:00",
			})
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx, domain.AppointmentsFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 50)
}

func TestRepository_CancelledContext(t *testing.T) {
	repo := NewRepository(Seed())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx, domain.AppointmentsFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepository_ConcurrentUpdateStatus(t *testing.T) {
	repo := NewRepository(Seed())
	ctx := context.Background()

	targets := []domain.AppointmentStatus{domain.StatusApproved, domain.StatusRejected}
	for i := 0; i < 20; i++ {
		targets = append(targets, targets[i%2])
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded []domain.AppointmentStatus
		conflicts int
	)
	for _, to := range targets {
		wg.Add(1)
		go func(to domain.AppointmentStatus) {
			defer wg.Done()
			_, err := repo.UpdateStatus(ctx, 2, domain.StatusPending, to)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded = append(succeeded, to)
				return
			}
			assert.ErrorIs(t, err, ErrStatusConflict)
			conflicts++
		}(to)
	}
	wg.Wait()

	require.Len(t, succeeded, 1)
	assert.Equal(t, len(targets)-1, conflicts)

	stored, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, succeeded[0], stored.Status)
}
