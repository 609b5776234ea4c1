package wizard

import "errors"

var (
	// ErrSelectionIncomplete возвращается, когда не выбраны дата или время
	ErrSelectionIncomplete = errors.New("wizard: date and time are required")

	// ErrDetailsIncomplete возвращается, когда не заполнены контактные данные
	ErrDetailsIncomplete = errors.New("wizard: contact details are incomplete")

	// ErrInvalidDetails возвращается при некорректных контактных данных
	ErrInvalidDetails = errors.New("wizard: invalid contact details")

	// ErrWrongStep возвращается, когда действие недоступно на текущем шаге
	ErrWrongStep = errors.New("wizard: action is not allowed at this step")

	// ErrNoPreviousStep возвращается при попытке вернуться с первого шага
	ErrNoPreviousStep = errors.New("wizard: already at the first step")

	// ErrAlreadySubmitted возвращается для любых переходов из Submitted, кроме Reset
	ErrAlreadySubmitted = errors.New("wizard: booking already submitted, reset to start over")
)
