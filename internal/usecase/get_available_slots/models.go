package get_available_slots

import (
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

// Options параметры выдачи слотов
type Options struct {
	// MinBookingNoticeMinutes на сегодня не предлагаются слоты ближе этого интервала
	MinBookingNoticeMinutes int
	// Location часовой пояс барбершопа, в нём определяется "сегодня"
	Location *time.Location
}

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date        time.Time
	Window      domain.DayWindow   // Рабочее окно дня (после учёта особых дней)
	Slots       []types.TimeString // Начала слотов; пусто, если день закрыт
	Granularity int                // Шаг слотов в минутах
}
