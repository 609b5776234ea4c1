package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/barber-booking/internal/availability"
	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/settings"
)

// Статусы для метрик
const (
	resultCreated  = "created"
	resultRejected = "rejected"
	resultFailed   = "failed"
)

// UseCase use case для создания заявки на визит
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleLoader  ScheduleLoader
	txManager       TransactionManager
	metrics         Metrics
	options         Options
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleLoader ScheduleLoader,
	txManager TransactionManager,
	metrics Metrics,
	options Options,
	logger Logger,
) *UseCase {
	if options.Location == nil {
		options.Location = time.UTC
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleLoader:  scheduleLoader,
		txManager:       txManager,
		metrics:         metrics,
		options:         options,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания заявки.
// Чтение расписания и запись заявки выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	switch {
	case err == nil:
		uc.metrics.ObserveBookingRequest(resultCreated)
	case errors.Is(err, ErrInternal), errors.Is(err, ErrScheduleUnavailable):
		uc.metrics.ObserveBookingRequest(resultFailed)
	default:
		uc.metrics.ObserveBookingRequest(resultRejected)
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.Date.IsZero() || req.Time.IsZero() {
		return nil, fmt.Errorf("%w: date and time are required", ErrInvalidInput)
	}
	if _, err := req.Time.Minutes(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := req.Details.Validate(); err != nil {
		uc.logger.Warn("CreateBooking: details validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("CreateBooking: date=%s, time=%s, people=%d, method=%s",
		domain.DateKey(date), req.Time, req.Details.PeopleCount, req.Details.NotificationMethod)

	// 2. Проверяем дату и минимальный интервал до визита
	now := uc.timeProvider.Now().In(uc.options.Location)
	if domain.DateKey(date) < domain.DateKey(now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", domain.DateKey(date))
		return nil, ErrInvalidDate
	}
	if err := uc.validateNotice(date, req, now); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	service := strings.TrimSpace(req.Service)
	if service == "" {
		service = DefaultService
	}

	var created *domain.Appointment

	// 3. Проверка расписания и запись заявки в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем расписание
		schedule, err := uc.scheduleLoader.LoadSchedule(txCtx)
		if err != nil {
			if errors.Is(err, settings.ErrStoredScheduleInvalid) {
				uc.logger.Error("CreateBooking: stored schedule is invalid: %v", err)
				return fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
			}
			uc.logger.Error("CreateBooking: failed to load schedule: %v", err)
			return fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
		}

		// 3.2. Проверяем выбор против рабочего окна
		if err := schedule.ValidateSelection(availability.Selection{Date: date, Time: req.Time}); err != nil {
			uc.logger.Warn("CreateBooking: selection rejected: %v", err)
			return err
		}

		// 3.3. Сохраняем заявку со статусом pending
		appointment := &domain.Appointment{
			Name:               strings.TrimSpace(req.Details.Name),
			Date:               date,
			Time:               req.Time,
			PeopleCount:        req.Details.PeopleCount,
			ContactInfo:        strings.TrimSpace(req.Details.ContactInfo),
			NotificationMethod: req.Details.NotificationMethod,
			Service:            service,
			Status:             domain.StatusPending,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if isKnown(err) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created appointment id=%d for %s %s", created.ID, domain.DateKey(created.Date), created.Time)

	return fromDomain(created), nil
}

// validateNotice для сегодняшней даты требует запас не меньше MinBookingNoticeMinutes
func (uc *UseCase) validateNotice(date time.Time, req *Request, now time.Time) error {
	if domain.DateKey(date) != domain.DateKey(now) {
		return nil
	}
	minutes, _ := req.Time.Minutes()
	earliest := now.Hour()*60 + now.Minute() + uc.options.MinBookingNoticeMinutes
	if minutes < earliest {
		return fmt.Errorf("%w: %s is earlier than %d minutes from now",
			ErrTooLateToBook, req.Time, uc.options.MinBookingNoticeMinutes)
	}
	return nil
}

func isKnown(err error) bool {
	return errors.Is(err, ErrInternal) ||
		errors.Is(err, ErrScheduleUnavailable) ||
		errors.Is(err, availability.ErrClosedDay) ||
		errors.Is(err, availability.ErrOutsideWorkingHours) ||
		errors.Is(err, availability.ErrInvalidSelection)
}
