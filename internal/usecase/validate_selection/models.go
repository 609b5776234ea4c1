package validate_selection

import (
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

// Request выбор клиента; любое из полей может быть пустым
type Request struct {
	Date time.Time
	Time types.TimeString
}

// Response результат проверки допустимого выбора
type Response struct {
	Complete bool             // выбраны и дата, и время
	Window   domain.DayWindow // окно выбранного дня (пустое, если дата не выбрана)
}
