package wizard

import (
	"time"

	"github.com/m04kA/barber-booking/internal/availability"
	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

// SelectionValidator проверяет выбор даты и времени (реализуется *availability.Schedule)
type SelectionValidator interface {
	ValidateSelection(sel availability.Selection) error
}

// ValidatorFunc адаптер функции к SelectionValidator
type ValidatorFunc func(sel availability.Selection) error

func (f ValidatorFunc) ValidateSelection(sel availability.Selection) error {
	return f(sel)
}

// Flow состояние мастера бронирования:
// SelectingDateTime -> EnteringDetails -> ReviewingSummary -> Submitted.
// Поля экспортированы, чтобы состояние можно было сериализовать в cookie
type Flow struct {
	Step    Step
	Date    time.Time
	Time    types.TimeString
	Details Details
}

// New создаёт мастер на первом шаге
func New() *Flow {
	return &Flow{
		Step:    StepSelectingDateTime,
		Details: DefaultDetails(),
	}
}

// Selection текущий выбор даты и времени
func (f *Flow) Selection() availability.Selection {
	return availability.Selection{Date: f.Date, Time: f.Time}
}

// SetDate меняет дату и сразу перепроверяет выбор.
// Состояние обновляется в любом случае, ошибка - вердикт для показа пользователю
func (f *Flow) SetDate(date time.Time, v SelectionValidator) error {
	if f.Step != StepSelectingDateTime {
		return f.stepError()
	}
	if date.IsZero() {
		f.Date = time.Time{}
	} else {
		f.Date = domain.DateOnly(date)
	}
	return v.ValidateSelection(f.Selection())
}

// SetTime меняет время и сразу перепроверяет выбор
func (f *Flow) SetTime(t types.TimeString, v SelectionValidator) error {
	if f.Step != StepSelectingDateTime {
		return f.stepError()
	}
	f.Time = t
	return v.ValidateSelection(f.Selection())
}

// SetDetails сохраняет контактные данные. Полнота проверяется при переходе дальше
func (f *Flow) SetDetails(d Details) error {
	if f.Step != StepEnteringDetails {
		return f.stepError()
	}
	f.Details = d
	return nil
}

// CanProceed можно ли перейти на следующий шаг
func (f *Flow) CanProceed(v SelectionValidator) bool {
	return f.checkForward(v) == nil
}

// Next переход вперёд на один шаг
func (f *Flow) Next(v SelectionValidator) error {
	if err := f.checkForward(v); err != nil {
		return err
	}
	f.Step++
	return nil
}

// Back переход назад на один шаг. Из Submitted назад нельзя - только Reset
func (f *Flow) Back() error {
	switch f.Step {
	case StepSubmitted:
		return ErrAlreadySubmitted
	case StepSelectingDateTime:
		return ErrNoPreviousStep
	}
	f.Step--
	return nil
}

// Submit отправка заявки со страницы сводки.
// Выбор проверяется повторно: расписание могло измениться, пока клиент заполнял форму
func (f *Flow) Submit(v SelectionValidator) error {
	if f.Step != StepReviewingSummary {
		return f.stepError()
	}
	if err := f.validateSelection(v); err != nil {
		return err
	}
	if err := f.Details.Validate(); err != nil {
		return err
	}
	f.Step = StepSubmitted
	return nil
}

// Reset очищает все поля и возвращает на первый шаг
func (f *Flow) Reset() {
	*f = *New()
}

func (f *Flow) checkForward(v SelectionValidator) error {
	switch f.Step {
	case StepSelectingDateTime:
		return f.validateSelection(v)
	case StepEnteringDetails:
		return f.Details.Validate()
	case StepSubmitted:
		return ErrAlreadySubmitted
	default:
		// со сводки вперёд только через Submit
		return ErrWrongStep
	}
}

func (f *Flow) validateSelection(v SelectionValidator) error {
	sel := f.Selection()
	if !sel.IsComplete() {
		return ErrSelectionIncomplete
	}
	return v.ValidateSelection(sel)
}

func (f *Flow) stepError() error {
	if f.Step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	return ErrWrongStep
}
