package get_working_hours

import (
	"context"
	"time"

	"github.com/m04kA/barber-booking/internal/service/settings/models"
)

type SettingsService interface {
	WorkingHours(ctx context.Context, from time.Time) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
