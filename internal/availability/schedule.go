package availability

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

// Schedule проверенная неизменяемая конфигурация расписания.
// Создаётся только через NewSchedule, поэтому методы движка не проверяют конфигурацию повторно
type Schedule struct {
	weekly      domain.WeeklySchedule
	overrides   map[string]domain.DateOverride
	granularity int
}

// NewSchedule проверяет конфигурацию и строит Schedule.
// Любое нарушение (закрытие раньше открытия, рабочий особый день без времени,
// дубликат даты, некорректный шаг) - ErrInvalidConfiguration
func NewSchedule(weekly domain.WeeklySchedule, overrides []domain.DateOverride, granularityMinutes int) (*Schedule, error) {
	if granularityMinutes < domain.MinSlotGranularityMinutes || granularityMinutes > domain.MaxSlotGranularityMinutes {
		return nil, fmt.Errorf("%w: slot granularity must be between %d and %d minutes, got %d",
			ErrInvalidConfiguration, domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes, granularityMinutes)
	}

	var normalized domain.WeeklySchedule
	for day := time.Sunday; day <= time.Saturday; day++ {
		window := weekly[day]
		if window.Label == "" {
			window.Label = day.String()
		}
		if window.IsOpen {
			if err := validateBounds(window.OpenTime, window.CloseTime); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, day, err)
			}
		} else {
			window.OpenTime, window.CloseTime = "", ""
		}
		window.FromOverride = false
		normalized[day] = window
	}

	byDate := make(map[string]domain.DateOverride, len(overrides))
	for _, o := range overrides {
		if o.Date.IsZero() {
			return nil, fmt.Errorf("%w: special day %q has no date", ErrInvalidConfiguration, o.Name)
		}
		key := o.DateKey()
		if strings.TrimSpace(o.Name) == "" {
			return nil, fmt.Errorf("%w: special day %s has no name", ErrInvalidConfiguration, key)
		}
		if _, exists := byDate[key]; exists {
			return nil, fmt.Errorf("%w: duplicate special day %s", ErrInvalidConfiguration, key)
		}

		if o.IsWorkDay {
			if o.OpenTime == nil || o.CloseTime == nil {
				return nil, fmt.Errorf("%w: work day %s (%s) requires open and close time",
					ErrInvalidConfiguration, key, o.Name)
			}
			if err := validateBounds(*o.OpenTime, *o.CloseTime); err != nil {
				return nil, fmt.Errorf("%w: special day %s: %v", ErrInvalidConfiguration, key, err)
			}
			openTime, closeTime := *o.OpenTime, *o.CloseTime
			o.OpenTime, o.CloseTime = &openTime, &closeTime
		} else {
			o.OpenTime, o.CloseTime = nil, nil
		}

		o.Date = domain.DateOnly(o.Date)
		byDate[key] = o
	}

	return &Schedule{
		weekly:      normalized,
		overrides:   byDate,
		granularity: granularityMinutes,
	}, nil
}

// FromSettings строит Schedule из настроек администратора
func FromSettings(settings *domain.ScheduleSettings) (*Schedule, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: settings are nil", ErrInvalidConfiguration)
	}
	return NewSchedule(settings.Weekly, settings.Overrides, settings.SlotGranularityMinutes)
}

// Granularity шаг слотов в минутах
func (s *Schedule) Granularity() int {
	return s.granularity
}

// Weekly копия недельного расписания
func (s *Schedule) Weekly() domain.WeeklySchedule {
	return s.weekly
}

// Overrides особые дни, отсортированные по дате
func (s *Schedule) Overrides() []domain.DateOverride {
	result := make([]domain.DateOverride, 0, len(s.overrides))
	for _, o := range s.overrides {
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// UpcomingOverrides особые дни начиная с from (включительно)
func (s *Schedule) UpcomingOverrides(from time.Time) []domain.DateOverride {
	fromKey := domain.DateKey(from)
	result := make([]domain.DateOverride, 0)
	for _, o := range s.Overrides() {
		if o.DateKey() >= fromKey {
			result = append(result, o)
		}
	}
	return result
}

func validateBounds(openTime, closeTime types.TimeString) error {
	open, err := openTime.Minutes()
	if err != nil {
		return fmt.Errorf("open time: %v", err)
	}
	closing, err := closeTime.Minutes()
	if err != nil {
		return fmt.Errorf("close time: %v", err)
	}
	if open >= closing {
		return fmt.Errorf("open time %s must be before close time %s", openTime, closeTime)
	}
	return nil
}
