package create_booking

import (
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/wizard"
	"github.com/m04kA/barber-booking/pkg/types"
)

// DefaultService услуга по умолчанию для заявок из мастера бронирования
const DefaultService = "Haircut"

// Options параметры бронирования из конфигурации
type Options struct {
	MinBookingNoticeMinutes int
	Location                *time.Location
}

// Request модель запроса на создание заявки
type Request struct {
	Date    time.Time        // Дата визита (без времени)
	Time    types.TimeString // Время визита, например "10:00"
	Details wizard.Details   // Контактные данные
	Service string           // Услуга (опционально)
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID                 int64
	Name               string
	Date               time.Time
	Time               types.TimeString
	PeopleCount        int
	ContactInfo        string
	NotificationMethod domain.NotificationMethod
	Service            string
	Status             domain.AppointmentStatus
	CreatedAt          time.Time
}

func fromDomain(a *domain.Appointment) *Response {
	return &Response{
		ID:                 a.ID,
		Name:               a.Name,
		Date:               a.Date,
		Time:               a.Time,
		PeopleCount:        a.PeopleCount,
		ContactInfo:        a.ContactInfo,
		NotificationMethod: a.NotificationMethod,
		Service:            a.Service,
		Status:             a.Status,
		CreatedAt:          a.CreatedAt,
	}
}
