package holidays

import "errors"

var (
	// ErrYearNotAvailable возвращается, когда календарь не знает запрошенный год
	ErrYearNotAvailable = errors.New("holidays client: year is not available")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidays client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от календаря
	ErrInvalidResponse = errors.New("holidays client: invalid response")
)
