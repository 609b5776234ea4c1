package domain

import (
	"time"

	"github.com/m04kA/barber-booking/pkg/types"
)

// AppointmentStatus represents the status of a booking request
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "pending"
	StatusApproved AppointmentStatus = "approved"
	StatusRejected AppointmentStatus = "rejected"
)

// IsValid returns true for known statuses
func (s AppointmentStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// NotificationMethod preferred channel for the confirmation
type NotificationMethod string

const (
	NotifyWhatsApp NotificationMethod = "WhatsApp"
	NotifyEmail    NotificationMethod = "Email"
	NotifySMS      NotificationMethod = "SMS"
)

// IsValid returns true for known methods
func (m NotificationMethod) IsValid() bool {
	return m == NotifyWhatsApp || m == NotifyEmail || m == NotifySMS
}

// Appointment represents a booking request sent to the barber
type Appointment struct {
	ID                 int64
	Name               string
	Date               time.Time
	Time               types.TimeString
	PeopleCount        int
	ContactInfo        string
	NotificationMethod NotificationMethod
	Service            string
	Status             AppointmentStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsPending returns true while the barber has not answered
func (a *Appointment) IsPending() bool {
	return a.Status == StatusPending
}

// CanBeDecided returns true if the request can be approved or rejected
func (a *Appointment) CanBeDecided() bool {
	return a.Status == StatusPending
}

// IsOn returns true if the appointment falls on the given day
func (a *Appointment) IsOn(day time.Time) bool {
	return DateKey(a.Date) == DateKey(day)
}

// AppointmentsFilter фильтр списка заявок (вкладка статуса + строка поиска)
type AppointmentsFilter struct {
	Status *AppointmentStatus // nil - все заявки
	Search string             // подстрока имени, контакта или услуги
}
