package settings

import (
	"context"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/integrations/holidays"
)

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	GetWeekly(ctx context.Context) (domain.WeeklySchedule, error)
	SaveWeekly(ctx context.Context, weekly domain.WeeklySchedule) error
	GetGranularity(ctx context.Context) (int, time.Time, error)
	SaveGranularity(ctx context.Context, minutes int) error
}

// SpecialDaysRepository интерфейс репозитория особых дней
type SpecialDaysRepository interface {
	List(ctx context.Context) ([]domain.DateOverride, error)
	Create(ctx context.Context, day *domain.DateOverride) (*domain.DateOverride, error)
	DeleteByDate(ctx context.Context, date time.Time) error
	DeleteAll(ctx context.Context) error
}

// HolidaysClient интерфейс клиента календаря праздников
type HolidaysClient interface {
	GetHolidays(ctx context.Context, year int) ([]holidays.Holiday, error)
}

// TxManager выполняет функцию в транзакции
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
