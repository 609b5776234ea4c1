package appointment

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
)

// Repository хранилище заявок в памяти процесса.
// Данные живут до перезапуска сервиса
type Repository struct {
	mu     sync.RWMutex
	items  map[int64]*domain.Appointment
	nextID int64
	now    func() time.Time
}

// NewRepository создает хранилище и заполняет его переданными заявками
func NewRepository(seed []domain.Appointment) *Repository {
	r := &Repository{
		items: make(map[int64]*domain.Appointment, len(seed)),
		now:   time.Now,
	}
	for i := range seed {
		a := seed[i]
		if a.ID == 0 {
			r.nextID++
			a.ID = r.nextID
		} else if a.ID > r.nextID {
			r.nextID = a.ID
		}
		r.items[a.ID] = &a
	}
	return r
}

// Create сохраняет новую заявку и присваивает ей ID
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a == nil || a.Date.IsZero() || a.Time.IsZero() {
		return nil, ErrInvalidAppointment
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	stored := *a
	r.nextID++
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.items[stored.ID] = &stored

	result := stored
	return &result, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	result := *a
	return &result, nil
}

// List возвращает заявки по фильтру, отсортированные по дате и времени.
// Поиск регистронезависимый по имени, контакту и услуге
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	r.mu.RLock()
	result := make([]*domain.Appointment, 0, len(r.items))
	for _, a := range r.items {
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if search != "" && !matches(a, search) {
			continue
		}
		item := *a
		result = append(result, &item)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		if result[i].Time != result[j].Time {
			return result[i].Time.IsBefore(result[j].Time)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// UpdateStatus меняет статус заявки с from на to.
// Если текущий статус уже не from, возвращает ErrStatusConflict
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	if a.Status != from {
		return nil, ErrStatusConflict
	}
	a.Status = to
	a.UpdatedAt = r.now()

	result := *a
	return &result, nil
}

func matches(a *domain.Appointment, search string) bool {
	return strings.Contains(strings.ToLower(a.Name), search) ||
		strings.Contains(strings.ToLower(a.ContactInfo), search) ||
		strings.Contains(strings.ToLower(a.Service), search)
}
