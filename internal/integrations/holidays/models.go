package holidays

import "time"

// Kind тип записи календаря
type Kind string

const (
	// KindHoliday праздник - барбершоп закрыт
	KindHoliday Kind = "holiday"
	// KindEve канун праздника - сокращённый день
	KindEve Kind = "eve"
)

// Holiday запись календаря праздников
type Holiday struct {
	Date time.Time
	Name string
	Kind Kind
}

// holidayDTO формат ответа календаря
type holidayDTO struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// ErrorResponse модель ошибки от календаря
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
