package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/barber-booking/internal/availability"
	"github.com/m04kA/barber-booking/internal/domain"
	scheduleRepo "github.com/m04kA/barber-booking/internal/infra/storage/schedule"
	specialDaysRepo "github.com/m04kA/barber-booking/internal/infra/storage/specialdays"
	"github.com/m04kA/barber-booking/internal/integrations/holidays"
	"github.com/m04kA/barber-booking/internal/service/settings/models"
)

// Service сервис настроек расписания барбершопа
type Service struct {
	scheduleRepo    ScheduleRepository
	specialDaysRepo SpecialDaysRepository
	holidaysClient  HolidaysClient
	txManager       TxManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	scheduleRepo ScheduleRepository,
	specialDaysRepo SpecialDaysRepository,
	holidaysClient HolidaysClient,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:    scheduleRepo,
		specialDaysRepo: specialDaysRepo,
		holidaysClient:  holidaysClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Get возвращает текущие настройки.
// Пока администратор ничего не сохранял, используются настройки по умолчанию
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.load(ctx)
	if err != nil {
		s.logger.Error("Get: failed to load settings: %v", err)
		return nil, err
	}
	return models.FromDomainSettings(settings), nil
}

// LoadSchedule загружает и проверяет расписание для движка доступности
func (s *Service) LoadSchedule(ctx context.Context) (*availability.Schedule, error) {
	settings, err := s.load(ctx)
	if err != nil {
		s.logger.Error("LoadSchedule: failed to load settings: %v", err)
		return nil, err
	}

	schedule, err := availability.FromSettings(settings)
	if err != nil {
		s.logger.Error("LoadSchedule: stored settings rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoredScheduleInvalid, err)
	}
	return schedule, nil
}

// WorkingHours публичная таблица часов работы и ближайшие особые дни
func (s *Service) WorkingHours(ctx context.Context, from time.Time) (*models.WorkingHoursResponse, error) {
	schedule, err := s.LoadSchedule(ctx)
	if err != nil {
		return nil, err
	}

	return &models.WorkingHoursResponse{
		WeeklyHours: models.FromDomainWeekly(schedule.Weekly()),
		SpecialDays: models.FromDomainOverrides(schedule.UpcomingOverrides(from)),
	}, nil
}

// Update полностью заменяет настройки расписания.
// Настройки проверяются целиком до записи: некорректное расписание не сохраняется
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating schedule settings (weekly=%d, special days=%d, granularity=%d)",
		len(req.WeeklyHours), len(req.SpecialDays), req.SlotGranularityMinutes)

	// 1. Конвертируем запрос
	settings, err := req.ToDomainSettings()
	if err != nil {
		s.logger.Warn("Update: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем расписание целиком
	schedule, err := availability.FromSettings(settings)
	if err != nil {
		s.logger.Warn("Update: schedule rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// 3. Записываем в одной транзакции
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := s.scheduleRepo.SaveWeekly(ctx, schedule.Weekly()); err != nil {
			return err
		}
		if err := s.scheduleRepo.SaveGranularity(ctx, schedule.Granularity()); err != nil {
			return err
		}
		if err := s.specialDaysRepo.DeleteAll(ctx); err != nil {
			return err
		}
		for _, o := range schedule.Overrides() {
			day := o
			if _, err := s.specialDaysRepo.Create(ctx, &day); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Update: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: Update - save settings: %v", ErrInternal, err)
	}

	s.logger.Info("Update: schedule settings saved")
	return s.Get(ctx)
}

// AddSpecialDay добавляет особый день
func (s *Service) AddSpecialDay(ctx context.Context, req *models.SpecialDay) (*models.SpecialDay, error) {
	s.logger.Info("AddSpecialDay: adding special day date=%s name=%q", req.Date, req.Name)

	override, err := req.ToDomainOverride()
	if err != nil {
		s.logger.Warn("AddSpecialDay: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range current.Overrides {
		if o.DateKey() == override.DateKey() {
			s.logger.Warn("AddSpecialDay: special day for %s already exists", override.DateKey())
			return nil, ErrSpecialDayExists
		}
	}

	if _, err := availability.NewSchedule(current.Weekly, []domain.DateOverride{*override}, current.SlotGranularityMinutes); err != nil {
		s.logger.Warn("AddSpecialDay: special day rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	created, err := s.specialDaysRepo.Create(ctx, override)
	if err != nil {
		if errors.Is(err, specialDaysRepo.ErrDuplicateDate) {
			return nil, ErrSpecialDayExists
		}
		s.logger.Error("AddSpecialDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddSpecialDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSpecialDay: special day id=%d created for %s", created.ID, created.DateKey())
	result := models.FromDomainOverride(created)
	return &result, nil
}

// RemoveSpecialDay удаляет особый день на дату
func (s *Service) RemoveSpecialDay(ctx context.Context, date time.Time) error {
	s.logger.Info("RemoveSpecialDay: removing special day date=%s", domain.DateKey(date))

	if err := s.specialDaysRepo.DeleteByDate(ctx, date); err != nil {
		if errors.Is(err, specialDaysRepo.ErrSpecialDayNotFound) {
			s.logger.Warn("RemoveSpecialDay: no special day on %s", domain.DateKey(date))
			return ErrSpecialDayNotFound
		}
		s.logger.Error("RemoveSpecialDay: repository error: %v", err)
		return fmt.Errorf("%w: RemoveSpecialDay - repository error: %v", ErrInternal, err)
	}
	return nil
}

// ImportHolidays добавляет праздники года из календаря.
// Праздник - выходной, канун праздника работает по часам пятницы.
// Даты, для которых особый день уже задан, не трогаются
func (s *Service) ImportHolidays(ctx context.Context, year int) (*models.ImportHolidaysResponse, error) {
	s.logger.Info("ImportHolidays: importing holidays for year=%d", year)

	// 1. Получаем праздники из календаря
	list, err := s.holidaysClient.GetHolidays(ctx, year)
	if err != nil {
		if errors.Is(err, holidays.ErrYearNotAvailable) {
			s.logger.Warn("ImportHolidays: calendar has no data for year=%d", year)
			return nil, ErrHolidaysNotFound
		}
		s.logger.Error("ImportHolidays: calendar error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrHolidaysUnavailable, err)
	}

	result := &models.ImportHolidaysResponse{
		Year:    year,
		Added:   make([]models.SpecialDay, 0, len(list)),
		Skipped: make([]string, 0),
	}

	// 2. Добавляем новые даты в одной транзакции
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		current, err := s.load(ctx)
		if err != nil {
			return err
		}

		existing := make(map[string]struct{}, len(current.Overrides))
		for _, o := range current.Overrides {
			existing[o.DateKey()] = struct{}{}
		}

		for _, h := range list {
			override := holidayToOverride(h, current.Weekly)
			key := override.DateKey()
			if _, ok := existing[key]; ok {
				result.Skipped = append(result.Skipped, key)
				continue
			}
			if _, err := availability.NewSchedule(current.Weekly, []domain.DateOverride{override}, current.SlotGranularityMinutes); err != nil {
				s.logger.Warn("ImportHolidays: skipping %s (%s): %v", key, h.Name, err)
				result.Skipped = append(result.Skipped, key)
				continue
			}

			created, err := s.specialDaysRepo.Create(ctx, &override)
			if err != nil {
				return err
			}
			existing[key] = struct{}{}
			result.Added = append(result.Added, models.FromDomainOverride(created))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("ImportHolidays: failed to save holidays: %v", err)
		return nil, fmt.Errorf("%w: ImportHolidays - save holidays: %v", ErrInternal, err)
	}

	s.logger.Info("ImportHolidays: year=%d added=%d skipped=%d", year, len(result.Added), len(result.Skipped))
	return result, nil
}

// load собирает настройки из хранилища, подставляя значения по умолчанию
func (s *Service) load(ctx context.Context) (*domain.ScheduleSettings, error) {
	settings := domain.DefaultScheduleSettings()

	weekly, err := s.scheduleRepo.GetWeekly(ctx)
	storedWeekly := true
	switch {
	case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
		storedWeekly = false
	case err != nil:
		return nil, fmt.Errorf("%w: load weekly hours: %v", ErrInternal, err)
	default:
		settings.Weekly = weekly
	}

	granularity, updatedAt, err := s.scheduleRepo.GetGranularity(ctx)
	switch {
	case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
	case err != nil:
		return nil, fmt.Errorf("%w: load granularity: %v", ErrInternal, err)
	default:
		settings.SlotGranularityMinutes = granularity
		settings.UpdatedAt = updatedAt
	}

	overrides, err := s.specialDaysRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load special days: %v", ErrInternal, err)
	}
	// демонстрационные особые дни показываются только до первого сохранения
	if storedWeekly || len(overrides) > 0 {
		settings.Overrides = overrides
	}

	return settings, nil
}

func holidayToOverride(h holidays.Holiday, weekly domain.WeeklySchedule) domain.DateOverride {
	override := domain.DateOverride{
		Date: domain.DateOnly(h.Date),
		Name: h.Name,
	}
	if h.Kind != holidays.KindEve {
		return override
	}

	friday := weekly.ForWeekday(time.Friday)
	if friday.IsOpen {
		openTime, closeTime := friday.OpenTime, friday.CloseTime
		override.IsWorkDay = true
		override.OpenTime = &openTime
		override.CloseTime = &closeTime
	}
	return override
}
