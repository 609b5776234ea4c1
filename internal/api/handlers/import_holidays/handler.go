package import_holidays

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/service/settings"
	"github.com/m04kA/barber-booking/internal/service/settings/models"
)

const (
	minYear = 2000
	maxYear = 2100

	msgInvalidYear         = "некорректный год"
	msgYearNotFound        = "календарь не содержит праздников на этот год"
	msgCalendarUnavailable = "календарь праздников недоступен"
)

type SettingsService interface {
	ImportHolidays(ctx context.Context, year int) (*models.ImportHolidaysResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/settings/holidays/import
// Query params: year (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < minYear || year > maxYear {
		h.logger.Warn("POST /admin/settings/holidays/import - Invalid year: %q", yearStr)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	result, err := h.service.ImportHolidays(r.Context(), year)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrHolidaysNotFound):
			h.logger.Warn("POST /admin/settings/holidays/import - Year not found: %d", year)
			handlers.RespondNotFound(w, msgYearNotFound)

		case errors.Is(err, settings.ErrHolidaysUnavailable):
			h.logger.Error("POST /admin/settings/holidays/import - Calendar unavailable: %v", err)
			handlers.RespondBadGateway(w, msgCalendarUnavailable)

		default:
			h.logger.Error("POST /admin/settings/holidays/import - Failed to import: year=%d, error=%v", year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/settings/holidays/import - Imported: year=%d, added=%d, skipped=%d",
		year, len(result.Added), len(result.Skipped))
	handlers.RespondJSON(w, http.StatusOK, result)
}
