package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest вкладка статуса и строка поиска
type ListAppointmentsRequest struct {
	Status *string `json:"status,omitempty"` // nil или "all" - все заявки
	Search string  `json:"search,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{Search: strings.TrimSpace(r.Search)}
	if r.Status == nil {
		return filter, nil
	}

	value := strings.ToLower(strings.TrimSpace(*r.Status))
	if value == "" || value == "all" {
		return filter, nil
	}

	status, err := ToDomainStatus(value)
	if err != nil {
		return filter, err
	}
	filter.Status = &status
	return filter, nil
}

// UpdateStatusRequest решение администратора по заявке
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse заявка на запись
type AppointmentResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	PeopleCount        int       `json:"peopleCount"`
	ContactInfo        string    `json:"contactInfo"`
	NotificationMethod string    `json:"notificationMethod"`
	Service            string    `json:"service,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// AppointmentListResponse список заявок
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// DashboardResponse сводка для главной страницы панели
type DashboardResponse struct {
	PendingCount     int                   `json:"pendingCount"`
	ApprovedCount    int                   `json:"approvedCount"`
	RejectedCount    int                   `json:"rejectedCount"`
	TodayCount       int                   `json:"todayCount"`
	PendingRequests  []AppointmentResponse `json:"pendingRequests"`
	UpcomingApproved []AppointmentResponse `json:"upcomingApproved"`
}

// Методы конвертации

// ToDomainStatus конвертирует строку в статус заявки
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Date:               a.Date.Format(domain.DateFormat),
		Time:               a.Time.String(),
		PeopleCount:        a.PeopleCount,
		ContactInfo:        a.ContactInfo,
		NotificationMethod: string(a.NotificationMethod),
		Service:            a.Service,
		Status:             string(a.Status),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список заявок
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	result := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, a := range list {
		result.Appointments = append(result.Appointments, FromDomainAppointment(a))
	}
	return result
}
