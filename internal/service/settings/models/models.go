package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при номере дня недели вне 0..6
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrDuplicateWeekday возвращается, если день недели указан в запросе дважды
	ErrDuplicateWeekday = errors.New("duplicate weekday")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime возвращается при времени не в формате HH:MM
	ErrInvalidTime = errors.New("invalid time")
)

// DayHours часы работы одного дня недели
type DayHours struct {
	Weekday   int     `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	Name      string  `json:"name,omitempty"`
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// SpecialDay особый день (праздник или день с особыми часами)
type SpecialDay struct {
	Date      string  `json:"date"`
	Name      string  `json:"name"`
	IsWorkDay bool    `json:"isWorkDay"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// Request модели

// UpdateSettingsRequest полная замена настроек расписания.
// Дни недели, которых нет в запросе, считаются выходными
type UpdateSettingsRequest struct {
	WeeklyHours            []DayHours   `json:"weeklyHours"`
	SpecialDays            []SpecialDay `json:"specialDays"`
	SlotGranularityMinutes int          `json:"slotGranularityMinutes"`
}

// ToDomainSettings конвертирует запрос в domain модель (без бизнес-валидации)
func (r *UpdateSettingsRequest) ToDomainSettings() (*domain.ScheduleSettings, error) {
	settings := &domain.ScheduleSettings{
		SlotGranularityMinutes: r.SlotGranularityMinutes,
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		settings.Weekly[day] = domain.ClosedWindow(day.String())
	}

	var seen [7]bool
	for _, h := range r.WeeklyHours {
		window, err := h.ToDomainWindow()
		if err != nil {
			return nil, err
		}
		if seen[h.Weekday] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWeekday, time.Weekday(h.Weekday))
		}
		seen[h.Weekday] = true
		settings.Weekly[h.Weekday] = window
	}

	settings.Overrides = make([]domain.DateOverride, 0, len(r.SpecialDays))
	for _, d := range r.SpecialDays {
		override, err := d.ToDomainOverride()
		if err != nil {
			return nil, err
		}
		settings.Overrides = append(settings.Overrides, *override)
	}

	return settings, nil
}

// ToDomainWindow конвертирует часы дня недели в domain модель
func (h DayHours) ToDomainWindow() (domain.DayWindow, error) {
	if h.Weekday < int(time.Sunday) || h.Weekday > int(time.Saturday) {
		return domain.DayWindow{}, fmt.Errorf("%w: %d", ErrInvalidWeekday, h.Weekday)
	}

	window := domain.DayWindow{
		IsOpen: h.IsOpen,
		Label:  time.Weekday(h.Weekday).String(),
	}
	if !h.IsOpen {
		return window, nil
	}

	openTime, err := parseTime(h.OpenTime)
	if err != nil {
		return domain.DayWindow{}, fmt.Errorf("%s open time: %w", window.Label, err)
	}
	closeTime, err := parseTime(h.CloseTime)
	if err != nil {
		return domain.DayWindow{}, fmt.Errorf("%s close time: %w", window.Label, err)
	}
	window.OpenTime, window.CloseTime = openTime, closeTime
	return window, nil
}

// ToDomainOverride конвертирует особый день в domain модель
func (d SpecialDay) ToDomainOverride() (*domain.DateOverride, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(d.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, d.Date)
	}

	override := &domain.DateOverride{
		Date:      date,
		Name:      strings.TrimSpace(d.Name),
		IsWorkDay: d.IsWorkDay,
	}
	if !d.IsWorkDay {
		return override, nil
	}

	if d.OpenTime != nil {
		openTime, err := parseTime(d.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%s open time: %w", d.Date, err)
		}
		override.OpenTime = &openTime
	}
	if d.CloseTime != nil {
		closeTime, err := parseTime(d.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%s close time: %w", d.Date, err)
		}
		override.CloseTime = &closeTime
	}
	return override, nil
}

// Response модели

// SettingsResponse настройки расписания для панели администратора
type SettingsResponse struct {
	WeeklyHours            []DayHours   `json:"weeklyHours"`
	SpecialDays            []SpecialDay `json:"specialDays"`
	SlotGranularityMinutes int          `json:"slotGranularityMinutes"`
	UpdatedAt              *time.Time   `json:"updatedAt,omitempty"`
}

// WorkingHoursResponse публичная таблица часов работы
type WorkingHoursResponse struct {
	WeeklyHours []DayHours   `json:"weeklyHours"`
	SpecialDays []SpecialDay `json:"upcomingSpecialDays"`
}

// ImportHolidaysResponse результат импорта праздников
type ImportHolidaysResponse struct {
	Year    int          `json:"year"`
	Added   []SpecialDay `json:"added"`
	Skipped []string     `json:"skipped"` // даты, для которых особый день уже был
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.ScheduleSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		WeeklyHours:            FromDomainWeekly(s.Weekly),
		SpecialDays:            FromDomainOverrides(s.Overrides),
		SlotGranularityMinutes: s.SlotGranularityMinutes,
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// FromDomainWeekly конвертирует недельное расписание, начиная с воскресенья
func FromDomainWeekly(weekly domain.WeeklySchedule) []DayHours {
	result := make([]DayHours, 0, len(weekly))
	for day := time.Sunday; day <= time.Saturday; day++ {
		w := weekly[day]
		h := DayHours{
			Weekday: int(day),
			Name:    day.String(),
			IsOpen:  w.IsOpen,
		}
		if w.IsOpen {
			h.OpenTime = timePtr(w.OpenTime)
			h.CloseTime = timePtr(w.CloseTime)
		}
		result = append(result, h)
	}
	return result
}

// FromDomainOverrides конвертирует список особых дней
func FromDomainOverrides(overrides []domain.DateOverride) []SpecialDay {
	result := make([]SpecialDay, 0, len(overrides))
	for i := range overrides {
		result = append(result, FromDomainOverride(&overrides[i]))
	}
	return result
}

// FromDomainOverride конвертирует особый день
func FromDomainOverride(o *domain.DateOverride) SpecialDay {
	d := SpecialDay{
		Date:      o.DateKey(),
		Name:      o.Name,
		IsWorkDay: o.IsWorkDay,
	}
	if o.IsWorkDay && o.OpenTime != nil && o.CloseTime != nil {
		d.OpenTime = timePtr(*o.OpenTime)
		d.CloseTime = timePtr(*o.CloseTime)
	}
	return d
}

func parseTime(s *string) (types.TimeString, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", fmt.Errorf("%w: value is required", ErrInvalidTime)
	}
	t, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, *s)
	}
	return t, nil
}

func timePtr(t types.TimeString) *string {
	s := t.String()
	return &s
}
