package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barber-booking/internal/infra/storage/appointment"
	"github.com/m04kA/barber-booking/internal/service/appointments/models"
)

// Service сервис заявок на запись для панели администратора
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает заявки по вкладке статуса и строке поиска
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	statusLabel := "all"
	if filter.Status != nil {
		statusLabel = string(*filter.Status)
	}
	s.logger.Info("List: fetched %d appointments (status=%s, search=%q)", len(list), statusLabel, filter.Search)
	return models.FromDomainAppointmentList(list), nil
}

// UpdateStatus одобряет или отклоняет заявку.
// Решение принимается один раз: менять можно только заявки в статусе pending
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d -> %s", id, req.Status)

	// 1. Проверяем целевой статус
	status, err := models.ToDomainStatus(req.Status)
	if err != nil || status == domain.StatusPending {
		s.logger.Warn("UpdateStatus: invalid target status=%q", req.Status)
		return nil, fmt.Errorf("%w: status must be approved or rejected", ErrInvalidInput)
	}

	// 2. Получаем заявку
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// 3. Проверяем, что решение ещё не принято
	if !appointment.CanBeDecided() {
		s.logger.Warn("UpdateStatus: appointment id=%d already %s", id, appointment.Status)
		return nil, ErrAlreadyDecided
	}

	// 4. Сохраняем, только если заявка всё ещё pending
	updated, err := s.repo.UpdateStatus(ctx, id, domain.StatusPending, status)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrStatusConflict):
			s.logger.Warn("UpdateStatus: appointment id=%d was decided concurrently", id)
			return nil, ErrAlreadyDecided
		}
		s.logger.Error("UpdateStatus: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", id, updated.Status)
	resp := models.FromDomainAppointment(updated)
	return &resp, nil
}

// Dashboard счётчики по статусам, заявки на сегодня и ближайшие одобренные
func (s *Service) Dashboard(ctx context.Context, now time.Time) (*models.DashboardResponse, error) {
	list, err := s.repo.List(ctx, domain.AppointmentsFilter{})
	if err != nil {
		s.logger.Error("Dashboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	// Даты заявок сравниваются по календарному ключу: now в часовом поясе барбершопа, a.Date в UTC
	todayKey := domain.DateKey(now)
	resp := &models.DashboardResponse{
		PendingRequests:  make([]models.AppointmentResponse, 0),
		UpcomingApproved: make([]models.AppointmentResponse, 0),
	}

	for _, a := range list {
		switch a.Status {
		case domain.StatusPending:
			resp.PendingCount++
			resp.PendingRequests = append(resp.PendingRequests, models.FromDomainAppointment(a))
		case domain.StatusApproved:
			resp.ApprovedCount++
			if domain.DateKey(a.Date) >= todayKey {
				resp.UpcomingApproved = append(resp.UpcomingApproved, models.FromDomainAppointment(a))
			}
		case domain.StatusRejected:
			resp.RejectedCount++
		}
		if a.IsOn(now) && a.Status != domain.StatusRejected {
			resp.TodayCount++
		}
	}

	return resp, nil
}
