package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/barber-booking/internal/availability"
)

// ScheduleLoader загружает проверенное расписание
type ScheduleLoader interface {
	LoadSchedule(ctx context.Context) (*availability.Schedule, error)
}

// Metrics метрики выдачи слотов
type Metrics interface {
	ObserveSlotsGenerated(window string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
