package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/settings"
	"github.com/m04kA/barber-booking/pkg/types"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	scheduleLoader ScheduleLoader
	metrics        Metrics
	options        Options
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleLoader ScheduleLoader,
	metrics Metrics,
	options Options,
	logger Logger,
) *UseCase {
	if options.Location == nil {
		options.Location = time.UTC
	}
	return &UseCase{
		scheduleLoader: scheduleLoader,
		metrics:        metrics,
		options:        options,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetAvailableSlots: date=%s", domain.DateKey(date))

	// 2. Проверяем, что дата не в прошлом
	now := uc.timeProvider.Now().In(uc.options.Location)
	if isDateInPast(date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", domain.DateKey(date))
		return nil, ErrInvalidDate
	}

	// 3. Загружаем расписание
	schedule, err := uc.scheduleLoader.LoadSchedule(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrStoredScheduleInvalid) {
			uc.logger.Error("GetAvailableSlots: stored schedule is invalid: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	// 4. Рабочее окно и слоты
	window := schedule.ResolveWindow(date)
	slots := schedule.GenerateSlots(date)

	// 5. На сегодня убираем слоты, до которых осталось меньше минимального интервала
	if domain.DateKey(date) == domain.DateKey(now) {
		slots = filterByNotice(slots, now, uc.options.MinBookingNoticeMinutes)
	}

	windowLabel := "closed"
	if window.IsOpen {
		windowLabel = "open"
	}
	uc.metrics.ObserveSlotsGenerated(windowLabel, len(slots))

	uc.logger.Info("GetAvailableSlots: date=%s window=%s slots=%d", domain.DateKey(date), windowLabel, len(slots))

	return &Response{
		Date:        date,
		Window:      window,
		Slots:       slots,
		Granularity: schedule.Granularity(),
	}, nil
}

// isDateInPast сравнивает только даты: сегодняшняя дата прошедшей не считается
func isDateInPast(date time.Time, now time.Time) bool {
	return domain.DateKey(date) < domain.DateKey(now)
}

// filterByNotice оставляет слоты не раньше now + notice
func filterByNotice(slots []types.TimeString, now time.Time, noticeMinutes int) []types.TimeString {
	earliest := now.Hour()*60 + now.Minute() + noticeMinutes

	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		minutes, err := slot.Minutes()
		if err != nil {
			continue
		}
		if minutes >= earliest {
			result = append(result, slot)
		}
	}
	return result
}
