package booking_wizard

import (
	"time"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/domain"
	createBooking "github.com/m04kA/barber-booking/internal/usecase/create_booking"
	"github.com/m04kA/barber-booking/internal/wizard"
)

// Действия мастера
const (
	ActionSetDateTime = "set_datetime"
	ActionSetDetails  = "set_details"
	ActionNext        = "next"
	ActionBack        = "back"
	ActionSubmit      = "submit"
	ActionReset       = "reset"
)

// WizardActionRequest действие пользователя.
// Для set_datetime отсутствующее поле не меняется, пустая строка очищает значение
type WizardActionRequest struct {
	Action  string          `json:"action"`
	Date    *string         `json:"date,omitempty"`
	Time    *string         `json:"time,omitempty"`
	Details *DetailsRequest `json:"details,omitempty"`
	Service string          `json:"service,omitempty"`
}

// DetailsRequest контактные данные
type DetailsRequest struct {
	Name               string `json:"name"`
	PeopleCount        int    `json:"peopleCount"`
	NotificationMethod string `json:"notificationMethod"`
	ContactInfo        string `json:"contactInfo"`
}

// ToWizardDetails конвертирует request в модель мастера
func (d *DetailsRequest) ToWizardDetails() wizard.Details {
	return wizard.Details{
		Name:               d.Name,
		PeopleCount:        d.PeopleCount,
		NotificationMethod: domain.NotificationMethod(d.NotificationMethod),
		ContactInfo:        d.ContactInfo,
	}
}

// DetailsResponse контактные данные в ответе
type DetailsResponse struct {
	Name               string `json:"name"`
	PeopleCount        int    `json:"peopleCount"`
	NotificationMethod string `json:"notificationMethod"`
	ContactInfo        string `json:"contactInfo"`
}

// AppointmentResponse созданная заявка
type AppointmentResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Service   string    `json:"service"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// WizardResponse состояние мастера после действия
type WizardResponse struct {
	Step        string                    `json:"step"`
	Date        string                    `json:"date,omitempty"`
	Time        string                    `json:"time,omitempty"`
	Details     DetailsResponse           `json:"details"`
	CanProceed  bool                      `json:"canProceed"`
	Verdict     *handlers.VerdictResponse `json:"verdict,omitempty"`
	Appointment *AppointmentResponse      `json:"appointment,omitempty"`
	Error       string                    `json:"error,omitempty"`
}

// FromFlow конвертирует состояние мастера в HTTP ответ
func FromFlow(flow *wizard.Flow, v wizard.SelectionValidator) *WizardResponse {
	resp := &WizardResponse{
		Step:       flow.Step.String(),
		Time:       flow.Time.String(),
		CanProceed: flow.CanProceed(v),
		Details: DetailsResponse{
			Name:               flow.Details.Name,
			PeopleCount:        flow.Details.PeopleCount,
			NotificationMethod: string(flow.Details.NotificationMethod),
			ContactInfo:        flow.Details.ContactInfo,
		},
	}
	if !flow.Date.IsZero() {
		resp.Date = domain.DateKey(flow.Date)
	}

	// Вердикт показываем, как только выбрано хотя бы одно поле
	if !flow.Date.IsZero() || !flow.Time.IsZero() {
		if verdict, ok := handlers.NewVerdict(v.ValidateSelection(flow.Selection())); ok {
			resp.Verdict = verdict
		}
	}
	return resp
}

// FromUseCaseResponse конвертирует созданную заявку
func FromUseCaseResponse(r *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        r.ID,
		Date:      domain.DateKey(r.Date),
		Time:      r.Time.String(),
		Service:   r.Service,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}
