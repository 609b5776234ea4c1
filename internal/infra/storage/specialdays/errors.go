package specialdays

import "errors"

var (
	// ErrSpecialDayNotFound возвращается, когда особого дня на дату нет
	ErrSpecialDayNotFound = errors.New("specialdays.repository: special day not found")

	// ErrDuplicateDate возвращается при попытке создать второй особый день на ту же дату
	ErrDuplicateDate = errors.New("specialdays.repository: special day for this date already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("specialdays.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("specialdays.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("specialdays.repository: failed to scan row")
)
