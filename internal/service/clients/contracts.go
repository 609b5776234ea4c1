package clients

import (
	"context"

	"github.com/m04kA/barber-booking/internal/domain"
)

// ClientRepository интерфейс справочника клиентов
type ClientRepository interface {
	Search(ctx context.Context, term string) ([]domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
