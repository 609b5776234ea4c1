package booking_wizard

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/availability"
	"github.com/m04kA/barber-booking/internal/domain"
	createBooking "github.com/m04kA/barber-booking/internal/usecase/create_booking"
	"github.com/m04kA/barber-booking/internal/wizard"
	"github.com/m04kA/barber-booking/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownAction      = "неизвестное действие"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate           = "нельзя выбрать прошедшую дату"
	msgMissingDetails     = "контактные данные обязательны"
	msgSelectionRequired  = "выберите дату и время"
	msgDetailsIncomplete  = "укажите имя и контакт для связи"
	msgInvalidDetails     = "некорректные контактные данные"
	msgWrongStep          = "действие недоступно на текущем шаге"
	msgNoPreviousStep     = "это первый шаг"
	msgAlreadySubmitted   = "заявка уже отправлена, начните заново"
	msgSelectionRejected  = "выбранные дата и время недоступны"
	msgTooLate            = "до выбранного времени слишком мало времени"
)

type Handler struct {
	scheduleLoader ScheduleLoader
	createBooking  CreateBookingUseCase
	store          WizardStore
	location       *time.Location
	now            func() time.Time
	logger         Logger
}

func NewHandler(
	scheduleLoader ScheduleLoader,
	createBooking CreateBookingUseCase,
	store WizardStore,
	location *time.Location,
	logger Logger,
) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		scheduleLoader: scheduleLoader,
		createBooking:  createBooking,
		store:          store,
		location:       location,
		now:            time.Now,
		logger:         logger,
	}
}

// HandleGet GET /api/v1/booking/wizard
// Текущее состояние мастера из cookie
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	flow := h.store.LoadWizard(r)

	schedule, err := h.scheduleLoader.LoadSchedule(r.Context())
	if err != nil {
		h.logger.Error("GET /booking/wizard - Failed to load schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromFlow(flow, schedule))
}

// HandlePost POST /api/v1/booking/wizard
// Body: {action: set_datetime|set_details|next|back|submit|reset, ...}
func (h *Handler) HandlePost(w http.ResponseWriter, r *http.Request) {
	var req WizardActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/wizard - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	flow := h.store.LoadWizard(r)

	schedule, err := h.scheduleLoader.LoadSchedule(r.Context())
	if err != nil {
		h.logger.Error("POST /booking/wizard - Failed to load schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	var appointment *AppointmentResponse

	switch req.Action {
	case ActionSetDateTime:
		err = h.setDateTime(flow, &req, schedule)

	case ActionSetDetails:
		if req.Details == nil {
			h.logger.Warn("POST /booking/wizard - Missing details")
			handlers.RespondBadRequest(w, msgMissingDetails)
			return
		}
		err = flow.SetDetails(req.Details.ToWizardDetails())

	case ActionNext:
		err = flow.Next(schedule)

	case ActionBack:
		err = flow.Back()

	case ActionSubmit:
		appointment, err = h.submit(r, flow, &req, schedule)

	case ActionReset:
		flow.Reset()

	default:
		h.logger.Warn("POST /booking/wizard - Unknown action: %q", req.Action)
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	// Ошибки формата даты не меняют состояние
	switch {
	case errors.Is(err, errInvalidDate):
		h.logger.Warn("POST /booking/wizard - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	case errors.Is(err, errPastDate):
		h.logger.Warn("POST /booking/wizard - Past date: %v", err)
		handlers.RespondBadRequest(w, msgPastDate)
		return
	}

	status, message := h.statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("POST /booking/wizard - Action %s failed: %v", req.Action, err)
		handlers.RespondInternalError(w)
		return
	}

	// Сохраняем состояние: изменения (например, выбранная дата) сохраняются даже при ошибке проверки
	if saveErr := h.store.SaveWizard(w, flow); saveErr != nil {
		h.logger.Error("POST /booking/wizard - Failed to save wizard state: %v", saveErr)
		handlers.RespondInternalError(w)
		return
	}

	resp := FromFlow(flow, schedule)
	resp.Appointment = appointment
	resp.Error = message

	if err != nil {
		h.logger.Info("POST /booking/wizard - Action %s rejected at step %s: %v", req.Action, flow.Step, err)
	} else {
		h.logger.Info("POST /booking/wizard - Action %s done, step=%s", req.Action, flow.Step)
	}
	handlers.RespondJSON(w, status, resp)
}

var (
	errInvalidDate = errors.New("invalid date format")
	errPastDate    = errors.New("date is in the past")
)

// setDateTime меняет дату и/или время. Вердикт движка не считается ошибкой действия:
// он возвращается в ответе, а переход дальше будет заблокирован
func (h *Handler) setDateTime(flow *wizard.Flow, req *WizardActionRequest, v wizard.SelectionValidator) error {
	var err error

	if req.Date != nil {
		var date time.Time
		if value := strings.TrimSpace(*req.Date); value != "" {
			date, err = time.Parse(domain.DateFormat, value)
			if err != nil {
				return errInvalidDate
			}
			if domain.DateKey(date) < domain.DateKey(h.now().In(h.location)) {
				return errPastDate
			}
		}
		err = flow.SetDate(date, v)
	}

	if req.Time != nil {
		err = flow.SetTime(types.TimeString(strings.TrimSpace(*req.Time)), v)
	}

	if isStepError(err) {
		return err
	}
	return nil
}

// submit переводит мастер в Submitted и создаёт заявку.
// Если заявка не создана, мастер остаётся на шаге сводки
func (h *Handler) submit(r *http.Request, flow *wizard.Flow, req *WizardActionRequest, v wizard.SelectionValidator) (*AppointmentResponse, error) {
	if err := flow.Submit(v); err != nil {
		return nil, err
	}

	result, err := h.createBooking.Execute(r.Context(), &createBooking.Request{
		Date:    flow.Date,
		Time:    flow.Time,
		Details: flow.Details,
		Service: req.Service,
	})
	if err != nil {
		flow.Step = wizard.StepReviewingSummary
		return nil, err
	}

	h.logger.Info("POST /booking/wizard - Booking request created: id=%d", result.ID)
	return FromUseCaseResponse(result), nil
}

// statusFor HTTP статус и сообщение для ошибки действия
func (h *Handler) statusFor(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, ""

	case errors.Is(err, availability.ErrClosedDay),
		errors.Is(err, availability.ErrOutsideWorkingHours),
		errors.Is(err, availability.ErrInvalidSelection):
		return http.StatusUnprocessableEntity, msgSelectionRejected

	case errors.Is(err, wizard.ErrSelectionIncomplete):
		return http.StatusBadRequest, msgSelectionRequired
	case errors.Is(err, wizard.ErrDetailsIncomplete):
		return http.StatusBadRequest, msgDetailsIncomplete
	case errors.Is(err, wizard.ErrInvalidDetails), errors.Is(err, createBooking.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidDetails
	case errors.Is(err, createBooking.ErrInvalidDate):
		return http.StatusBadRequest, msgPastDate
	case errors.Is(err, createBooking.ErrTooLateToBook):
		return http.StatusBadRequest, msgTooLate

	case errors.Is(err, wizard.ErrWrongStep):
		return http.StatusConflict, msgWrongStep
	case errors.Is(err, wizard.ErrNoPreviousStep):
		return http.StatusConflict, msgNoPreviousStep
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		return http.StatusConflict, msgAlreadySubmitted

	default:
		return http.StatusInternalServerError, ""
	}
}

func isStepError(err error) bool {
	return errors.Is(err, wizard.ErrWrongStep) || errors.Is(err, wizard.ErrAlreadySubmitted)
}
