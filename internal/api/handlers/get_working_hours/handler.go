package get_working_hours

import (
	"net/http"
	"time"

	"github.com/m04kA/barber-booking/internal/api/handlers"
)

type Handler struct {
	service  SettingsService
	location *time.Location
	now      func() time.Time
	logger   Logger
}

func NewHandler(service SettingsService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		service:  service,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Handle GET /api/v1/working-hours
// Недельное расписание и ближайшие особые дни
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.WorkingHours(r.Context(), h.now().In(h.location))
	if err != nil {
		h.logger.Error("GET /working-hours - Failed to get working hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
