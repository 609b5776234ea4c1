package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата уже прошла
	ErrInvalidDate = errors.New("date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrScheduleUnavailable возвращается, когда сохранённое расписание некорректно
	ErrScheduleUnavailable = errors.New("schedule configuration is unavailable")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
