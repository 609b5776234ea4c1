package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/dbmetrics"
	"github.com/m04kA/barber-booking/pkg/psqlbuilder"
	"github.com/m04kA/barber-booking/pkg/types"
)

// settingsRowID в schedule_settings всегда одна строка
const settingsRowID = 1

// Repository репозиторий недельного расписания и шага слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekly получает недельное расписание.
// Если строк нет - ErrScheduleNotFound (используются значения по умолчанию)
func (r *Repository) GetWeekly(ctx context.Context) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var weekly domain.WeeklySchedule

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"open_time",
		"close_time",
	).
		From("weekly_hours").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return weekly, fmt.Errorf("%w: GetWeekly - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return weekly, fmt.Errorf("%w: GetWeekly - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	found := 0
	for rows.Next() {
		var (
			weekday             int
			window              domain.DayWindow
			openTime, closeTime types.TimeString
		)

		if err := rows.Scan(&weekday, &window.IsOpen, &openTime, &closeTime); err != nil {
			return weekly, fmt.Errorf("%w: GetWeekly - scan row: %v", ErrScanRow, err)
		}
		if weekday < int(time.Sunday) || weekday > int(time.Saturday) {
			return weekly, fmt.Errorf("%w: GetWeekly - weekday %d out of range", ErrScanRow, weekday)
		}

		window.OpenTime = openTime
		window.CloseTime = closeTime
		window.Label = time.Weekday(weekday).String()
		weekly[weekday] = window
		found++
	}

	if err := rows.Err(); err != nil {
		return weekly, fmt.Errorf("%w: GetWeekly - rows error: %v", ErrScanRow, err)
	}

	if found == 0 {
		return weekly, ErrScheduleNotFound
	}

	// дни без строки считаются закрытыми
	for day := time.Sunday; day <= time.Saturday; day++ {
		if weekly[day].Label == "" {
			weekly[day] = domain.ClosedWindow(day.String())
		}
	}

	return weekly, nil
}

// SaveWeekly сохраняет все семь дней недели (upsert по weekday).
// Если в контексте передана активная транзакция, использует её
func (r *Repository) SaveWeekly(ctx context.Context, weekly domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("weekly_hours").
		Columns("weekday", "is_open", "open_time", "close_time", "updated_at")

	now := time.Now()
	for day := time.Sunday; day <= time.Saturday; day++ {
		window := weekly[day]
		var openTime, closeTime types.TimeString
		if window.IsOpen {
			openTime, closeTime = window.OpenTime, window.CloseTime
		}
		insert = insert.Values(int(day), window.IsOpen, openTime, closeTime, now)
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (weekday) DO UPDATE SET " +
			"is_open = EXCLUDED.is_open, " +
			"open_time = EXCLUDED.open_time, " +
			"close_time = EXCLUDED.close_time, " +
			"updated_at = EXCLUDED.updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveWeekly - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveWeekly - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetGranularity получает шаг слотов и время последнего изменения настроек
func (r *Repository) GetGranularity(ctx context.Context) (int, time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"slot_granularity_minutes",
		"updated_at",
	).
		From("schedule_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: GetGranularity - build select query: %v", ErrBuildQuery, err)
	}

	var granularity int
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&granularity, &updatedAt)
	if err == sql.ErrNoRows {
		return 0, time.Time{}, ErrScheduleNotFound
	}
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: GetGranularity - scan settings: %v", ErrScanRow, err)
	}

	return granularity, updatedAt.Time, nil
}

// SaveGranularity сохраняет шаг слотов
func (r *Repository) SaveGranularity(ctx context.Context, minutes int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_settings").
		Columns("id", "slot_granularity_minutes", "updated_at").
		Values(settingsRowID, minutes, time.Now()).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"slot_granularity_minutes = EXCLUDED.slot_granularity_minutes, " +
			"updated_at = EXCLUDED.updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveGranularity - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveGranularity - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
