package client

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/m04kA/barber-booking/internal/domain"
)

// Repository справочник клиентов в памяти процесса
type Repository struct {
	mu      sync.RWMutex
	clients []domain.Client
}

// NewRepository создает справочник клиентов
func NewRepository(seed []domain.Client) *Repository {
	clients := make([]domain.Client, len(seed))
	copy(clients, seed)
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return &Repository{clients: clients}
}

// Search ищет клиентов по подстроке имени, телефона, почты или любимой услуги.
// Пустая строка возвращает всех клиентов
func (r *Repository) Search(ctx context.Context, term string) ([]domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		if term == "" || matches(c, term) {
			result = append(result, c)
		}
	}
	return result, nil
}

func matches(c domain.Client, term string) bool {
	if strings.Contains(strings.ToLower(c.Name), term) || strings.Contains(c.Phone, term) {
		return true
	}
	if c.Email != nil && strings.Contains(strings.ToLower(*c.Email), term) {
		return true
	}
	return c.FavoriteService != nil && strings.Contains(strings.ToLower(*c.FavoriteService), term)
}
