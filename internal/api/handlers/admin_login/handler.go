package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/pkg/password"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingPassword    = "пароль обязателен"
	msgWrongPassword      = "неверный пароль"
)

type Handler struct {
	checker  PasswordChecker
	sessions AdminSessions
	logger   Logger
}

func NewHandler(checker PasswordChecker, sessions AdminSessions, logger Logger) *Handler {
	return &Handler{
		checker:  checker,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.checker.Check(req.Password); err != nil {
		switch {
		case errors.Is(err, password.ErrEmptyPassword):
			h.logger.Warn("POST /admin/login - Empty password")
			handlers.RespondBadRequest(w, msgMissingPassword)

		case errors.Is(err, password.ErrMismatch):
			h.logger.Warn("POST /admin/login - Wrong password from %s", r.RemoteAddr)
			handlers.RespondError(w, http.StatusUnauthorized, msgWrongPassword)

		default:
			h.logger.Error("POST /admin/login - Failed to check password: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if err := h.sessions.StartAdmin(w); err != nil {
		h.logger.Error("POST /admin/login - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in from %s", r.RemoteAddr)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Authenticated: true})
}
