package booking_wizard

import (
	"context"
	"net/http"

	"github.com/m04kA/barber-booking/internal/availability"
	createBooking "github.com/m04kA/barber-booking/internal/usecase/create_booking"
	"github.com/m04kA/barber-booking/internal/wizard"
)

// ScheduleLoader загружает проверенное расписание
type ScheduleLoader interface {
	LoadSchedule(ctx context.Context) (*availability.Schedule, error)
}

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// WizardStore хранит состояние мастера между запросами (реализуется *session.Manager)
type WizardStore interface {
	LoadWizard(r *http.Request) *wizard.Flow
	SaveWizard(w http.ResponseWriter, flow *wizard.Flow) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
