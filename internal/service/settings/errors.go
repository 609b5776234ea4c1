package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном формате входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSchedule возвращается, когда новые настройки не проходят проверку расписания
	ErrInvalidSchedule = errors.New("invalid schedule configuration")

	// ErrStoredScheduleInvalid возвращается, когда сохранённые настройки не проходят проверку
	ErrStoredScheduleInvalid = errors.New("stored schedule configuration is invalid")

	// ErrSpecialDayExists возвращается, когда на дату уже есть особый день
	ErrSpecialDayExists = errors.New("special day already exists")

	// ErrSpecialDayNotFound возвращается, когда особого дня на дату нет
	ErrSpecialDayNotFound = errors.New("special day not found")

	// ErrHolidaysNotFound возвращается, когда календарь не знает запрошенный год
	ErrHolidaysNotFound = errors.New("holidays for the year not found")

	// ErrHolidaysUnavailable возвращается при недоступности календаря праздников
	ErrHolidaysUnavailable = errors.New("holiday calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
