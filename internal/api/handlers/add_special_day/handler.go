package add_special_day

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/service/settings"
	"github.com/m04kA/barber-booking/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные особого дня"
	msgAlreadyExists      = "на эту дату уже задан особый день"
)

type SettingsService interface {
	AddSpecialDay(ctx context.Context, req *models.SpecialDay) (*models.SpecialDay, error)
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

// Handle POST /api/v1/admin/settings/special-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SpecialDay
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/settings/special-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddSpecialDay(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput), errors.Is(err, settings.ErrInvalidSchedule):
			h.logger.Warn("POST /admin/settings/special-days - Invalid data: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, settings.ErrSpecialDayExists):
			h.logger.Warn("POST /admin/settings/special-days - Already exists: date=%s", req.Date)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /admin/settings/special-days - Failed to add special day: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/settings/special-days - Special day added: date=%s", result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
