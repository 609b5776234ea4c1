package get_dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/service/appointments/models"
)

type AppointmentsService interface {
	Dashboard(ctx context.Context, now time.Time) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service  AppointmentsService
	location *time.Location
	now      func() time.Time
	logger   Logger
}

func NewHandler(service AppointmentsService, location *time.Location, logger Logger) *Handler {
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

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Dashboard(r.Context(), h.now().In(h.location))
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - pending=%d, today=%d", result.PendingCount, result.TodayCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
