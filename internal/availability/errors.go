package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

var (
	// ErrClosedDay возвращается, когда в выбранную дату салон закрыт (по расписанию или особому дню)
	ErrClosedDay = errors.New("availability: closed day")

	// ErrOutsideWorkingHours возвращается, когда время вне рабочего окна открытого дня
	ErrOutsideWorkingHours = errors.New("availability: outside working hours")

	// ErrInvalidConfiguration возвращается при загрузке некорректного расписания.
	// Такое расписание отклоняется целиком
	ErrInvalidConfiguration = errors.New("availability: invalid configuration")

	// ErrInvalidSelection возвращается, когда время в выборе не в формате HH:MM
	ErrInvalidSelection = errors.New("availability: invalid selection")
)

// ClosedDayError закрытый день; Label - название дня недели или особого дня
type ClosedDayError struct {
	Date         time.Time
	Label        string
	FromOverride bool
}

func (e *ClosedDayError) Error() string {
	if e.FromOverride {
		return fmt.Sprintf("closed: %s", e.Label)
	}
	return fmt.Sprintf("closed on %ss", e.Label)
}

func (e *ClosedDayError) Unwrap() error {
	return ErrClosedDay
}

// OutsideHoursError время вне окна [OpenTime, CloseTime]
type OutsideHoursError struct {
	Date      time.Time
	Time      types.TimeString
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

func (e *OutsideHoursError) Error() string {
	return fmt.Sprintf("%s is outside working hours %s-%s on %s",
		e.Time, e.OpenTime, e.CloseTime, e.Date.Format(domain.DateFormat))
}

func (e *OutsideHoursError) Unwrap() error {
	return ErrOutsideWorkingHours
}
