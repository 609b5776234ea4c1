package handlers

import (
	"errors"

	"github.com/m04kA/barber-booking/internal/availability"
)

// Коды вердикта проверки выбора
const (
	VerdictOK           = "ok"
	VerdictClosedDay    = "closed_day"
	VerdictOutsideHours = "outside_hours"
	VerdictInvalidTime  = "invalid_time"
)

// VerdictResponse результат проверки даты и времени для показа пользователю
type VerdictResponse struct {
	Valid     bool    `json:"valid"`
	Code      string  `json:"code"`
	Reason    string  `json:"reason,omitempty"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// NewVerdict строит вердикт из ошибки движка доступности.
// ok == false, если ошибка не является вердиктом (её нужно обработать отдельно)
func NewVerdict(err error) (verdict *VerdictResponse, ok bool) {
	if err == nil {
		return &VerdictResponse{Valid: true, Code: VerdictOK}, true
	}

	var closed *availability.ClosedDayError
	if errors.As(err, &closed) {
		return &VerdictResponse{Code: VerdictClosedDay, Reason: closed.Error()}, true
	}

	var outside *availability.OutsideHoursError
	if errors.As(err, &outside) {
		openTime, closeTime := outside.OpenTime.String(), outside.CloseTime.String()
		return &VerdictResponse{
			Code:      VerdictOutsideHours,
			Reason:    "please choose a time between " + openTime + " and " + closeTime,
			OpenTime:  &openTime,
			CloseTime: &closeTime,
		}, true
	}

	if errors.Is(err, availability.ErrInvalidSelection) {
		return &VerdictResponse{Code: VerdictInvalidTime, Reason: "time must be in HH:MM format"}, true
	}

	return nil, false
}
