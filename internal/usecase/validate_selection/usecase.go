package validate_selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/barber-booking/internal/availability"
	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/settings"
)

// Вердикты для метрик
const (
	verdictOK           = "ok"
	verdictIncomplete   = "incomplete"
	verdictClosedDay    = "closed_day"
	verdictOutsideHours = "outside_hours"
	verdictPastDate     = "past_date"
	verdictMalformed    = "malformed"
)

// UseCase проверка выбранных даты и времени против расписания
type UseCase struct {
	scheduleLoader ScheduleLoader
	metrics        Metrics
	location       *time.Location
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleLoader ScheduleLoader, metrics Metrics, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		scheduleLoader: scheduleLoader,
		metrics:        metrics,
		location:       location,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute проверяет выбор. Неполный выбор допустим и возвращается без ошибки.
// Ошибки движка (*availability.ClosedDayError, *availability.OutsideHoursError,
// availability.ErrInvalidSelection) возвращаются как есть
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sel := availability.Selection{Date: req.Date, Time: req.Time}
	resp := &Response{Complete: sel.IsComplete()}

	// 1. Прошедшая дата
	if !req.Date.IsZero() {
		now := uc.timeProvider.Now().In(uc.location)
		if domain.DateKey(req.Date) < domain.DateKey(now) {
			uc.metrics.ObserveSelectionVerdict(verdictPastDate)
			return nil, ErrInvalidDate
		}
	}

	// 2. Загружаем расписание
	schedule, err := uc.scheduleLoader.LoadSchedule(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrStoredScheduleInvalid) {
			uc.logger.Error("ValidateSelection: stored schedule is invalid: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
		}
		uc.logger.Error("ValidateSelection: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	if !req.Date.IsZero() {
		resp.Window = schedule.ResolveWindow(req.Date)
	}

	// 3. Проверка движком
	if err := schedule.ValidateSelection(sel); err != nil {
		uc.metrics.ObserveSelectionVerdict(verdictFor(err))
		uc.logger.Info("ValidateSelection: date=%s time=%s rejected: %v", domain.DateKey(req.Date), req.Time, err)
		return resp, err
	}

	if resp.Complete {
		uc.metrics.ObserveSelectionVerdict(verdictOK)
	} else {
		uc.metrics.ObserveSelectionVerdict(verdictIncomplete)
	}
	return resp, nil
}

func verdictFor(err error) string {
	switch {
	case errors.Is(err, availability.ErrClosedDay):
		return verdictClosedDay
	case errors.Is(err, availability.ErrOutsideWorkingHours):
		return verdictOutsideHours
	default:
		return verdictMalformed
	}
}
