package admin_logout

import (
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
)

// AdminSessions закрытие сессии администратора (реализуется *session.Manager)
type AdminSessions interface {
	EndAdmin(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	sessions AdminSessions
	logger   Logger
}

func NewHandler(sessions AdminSessions, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.sessions.EndAdmin(w)
	h.logger.Info("POST /admin/logout - Admin logged out")
	handlers.RespondNoContent(w)
}
