package specialdays

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/dbmetrics"
	"github.com/m04kA/barber-booking/pkg/psqlbuilder"
)

// uniqueViolation код ошибки postgres для нарушения уникального индекса
const uniqueViolation = "23505"

var columns = []string{
	"id",
	"date",
	"name",
	"is_work_day",
	"open_time",
	"close_time",
	"created_at",
}

// Repository репозиторий особых дней (праздники, сокращённые дни)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория особых дней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все особые дни, отсортированные по дате
func (r *Repository) List(ctx context.Context) ([]domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("special_days").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSpecialDays(rows)
}

// GetByDate получает особый день на дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("special_days").
		Where(squirrel.Eq{"date": domain.DateKey(date)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var day domain.DateOverride
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.ID,
		&day.Date,
		&day.Name,
		&day.IsWorkDay,
		&day.OpenTime,
		&day.CloseTime,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSpecialDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan special day: %v", ErrScanRow, err)
	}

	day.CreatedAt = createdAt.Time
	return &day, nil
}

// Create создает особый день.
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, day *domain.DateOverride) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("special_days").
		Columns(
			"date",
			"name",
			"is_work_day",
			"open_time",
			"close_time",
		).
		Values(
			day.DateKey(),
			day.Name,
			day.IsWorkDay,
			day.OpenTime,
			day.CloseTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&day.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateDate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time
	return day, nil
}

// DeleteByDate удаляет особый день на дату
func (r *Repository) DeleteByDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("special_days").
		Where(squirrel.Eq{"date": domain.DateKey(date)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpecialDayNotFound
	}

	return nil
}

// DeleteAll удаляет все особые дни. Используется при полной замене настроек внутри транзакции
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("special_days").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanSpecialDays сканирует результаты запроса в слайс особых дней
func (r *Repository) scanSpecialDays(rows *sql.Rows) ([]domain.DateOverride, error) {
	days := make([]domain.DateOverride, 0)

	for rows.Next() {
		var day domain.DateOverride
		var createdAt sql.NullTime

		err := rows.Scan(
			&day.ID,
			&day.Date,
			&day.Name,
			&day.IsWorkDay,
			&day.OpenTime,
			&day.CloseTime,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSpecialDays - scan row: %v", ErrScanRow, err)
		}

		day.CreatedAt = createdAt.Time
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSpecialDays - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}
