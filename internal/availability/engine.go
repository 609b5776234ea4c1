package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

// Selection выбор пользователя. Пустые Date/Time означают, что поле ещё не заполнено
type Selection struct {
	Date time.Time
	Time types.TimeString
}

// IsComplete true, когда заполнены и дата, и время
func (s Selection) IsComplete() bool {
	return !s.Date.IsZero() && !s.Time.IsZero()
}

// ResolveWindow возвращает рабочее окно на дату: особый день важнее недельного расписания
func (s *Schedule) ResolveWindow(date time.Time) domain.DayWindow {
	if o, ok := s.overrides[domain.DateKey(date)]; ok {
		return o.Window()
	}
	return s.weekly.ForWeekday(date.Weekday())
}

// GenerateSlots возвращает время начала слотов на дату по возрастанию.
// Слот предлагается, только если полный интервал помещается до закрытия:
// open <= t <= close - granularity
func (s *Schedule) GenerateSlots(date time.Time) []types.TimeString {
	window := s.ResolveWindow(date)
	if !window.IsOpen {
		return []types.TimeString{}
	}

	// границы проверены в NewSchedule
	open, _ := window.OpenTime.Minutes()
	closing, _ := window.CloseTime.Minutes()

	slots := make([]types.TimeString, 0, (closing-open)/s.granularity)
	for t := open; t+s.granularity <= closing; t += s.granularity {
		slot, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}
	return slots
}

// ValidateSelection проверяет выбор против рабочего окна даты.
// Неполный выбор (нет даты или времени) считается корректным: отклонять пока нечего.
// Границы окна включительные: open <= time <= close
func (s *Schedule) ValidateSelection(sel Selection) error {
	if !sel.IsComplete() {
		return nil
	}

	window := s.ResolveWindow(sel.Date)
	if !window.IsOpen {
		return &ClosedDayError{
			Date:         domain.DateOnly(sel.Date),
			Label:        window.Label,
			FromOverride: window.FromOverride,
		}
	}

	if err := sel.Time.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	if sel.Time.IsBefore(window.OpenTime) || sel.Time.IsAfter(window.CloseTime) {
		return &OutsideHoursError{
			Date:      domain.DateOnly(sel.Date),
			Time:      sel.Time,
			OpenTime:  window.OpenTime,
			CloseTime: window.CloseTime,
		}
	}

	return nil
}
